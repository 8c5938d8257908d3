package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type FileHandlers struct {
	baseDir     string
	uploadsDir  string
	strictPaths bool
}

func NewFileHandlers(baseDir, uploadsDir string, strictPaths bool) *FileHandlers {
	return &FileHandlers{baseDir: baseDir, uploadsDir: uploadsDir, strictPaths: strictPaths}
}

// View reads a file relative to the base directory and returns its content.
// The path is joined without a containment check unless strict mode is on,
// so parent-directory segments walk out of the base. That local file
// inclusion is the exercise; do not add validation here.
func (h *FileHandlers) View(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File path is required"})
	}

	fullPath := filepath.Join(h.baseDir, path)
	if h.strictPaths && !containedIn(fullPath, h.baseDir) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Path escapes base directory"})
	}

	info, err := os.Stat(fullPath)
	if os.IsNotExist(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if info.IsDir() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Path is a directory"})
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"path":    path,
		"content": string(content),
		"size":    info.Size(),
	})
}

// Include reads a file relative to the uploads directory. Nominally scoped
// to uploads, but the join is as unguarded as View's, so the scope can be
// escaped the same way.
func (h *FileHandlers) Include(c *fiber.Ctx) error {
	include := c.Query("include")
	if include == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Include path is required"})
	}

	fullPath := filepath.Join(h.uploadsDir, include)
	if h.strictPaths && !containedIn(fullPath, h.uploadsDir) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Path escapes uploads directory"})
	}

	info, err := os.Stat(fullPath)
	if os.IsNotExist(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if info.IsDir() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Path is a directory"})
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"included": include,
		"content":  string(content),
	})
}

// containedIn reports whether path resolves inside base. Only consulted in
// strict mode.
func containedIn(path, base string) bool {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}
