package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"learnify/middleware"
	"learnify/models"
	"learnify/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClassHandlers struct {
	classes *repositories.ClassRepository
}

func NewClassHandlers(classes *repositories.ClassRepository) *ClassHandlers {
	return &ClassHandlers{classes: classes}
}

// generateClassCode builds a join code from the class name: up to four
// uppercase alphanumerics plus three random digits. Collisions are not
// checked; the unique index surfaces them as a create error.
func generateClassCode(name string) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			prefix.WriteRune(r)
			if prefix.Len() == 4 {
				break
			}
		}
	}
	code := prefix.String()
	if code == "" {
		code = "CLS"
	}
	return fmt.Sprintf("%s%d", code, 100+rand.Intn(900))
}

// List returns the caller's classes: enrolled ones for students, owned ones
// for lecturers, all of them for admins.
func (h *ClassHandlers) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var (
		rows []repositories.ClassWithLecturer
		err  error
	)
	switch user.Role {
	case models.RoleStudent:
		rows, err = h.classes.ListForStudent(user.ID)
	case models.RoleAdmin:
		rows, err = h.classes.ListAll()
	default:
		rows, err = h.classes.ListForLecturer(user.ID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rows)
}

type createClassRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Create makes a new class owned by the caller. The join code is either the
// client's, uppercased, or generated from the name.
func (h *ClassHandlers) Create(c *fiber.Ctx) error {
	var req createClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		code = generateClassCode(req.Name)
	}

	class := models.Class{
		Name:        req.Name,
		Code:        code,
		Description: req.Description,
		LecturerID:  middleware.CurrentUser(c).ID,
	}

	if err := h.classes.Create(&class); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(class)
}

type joinClassRequest struct {
	Code string `json:"code"`
}

// Join enrolls the calling student in the class with the given code.
// Joining a class twice is a no-op.
func (h *ClassHandlers) Join(c *fiber.Ctx) error {
	var req joinClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Class code is required"})
	}

	class, err := h.classes.GetByCode(req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.classes.Enroll(class.ID, middleware.CurrentUser(c).ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Enrolled in class", "class_id": class.ID})
}

// Get returns one class with its lecturer's name and email.
func (h *ClassHandlers) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	row, err := h.classes.GetWithLecturer(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(row)
}

// Students returns the roster of a class. Lecturers see only their own
// classes, students only classes they are enrolled in, admins any class.
func (h *ClassHandlers) Students(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	class, err := h.classes.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	user := middleware.CurrentUser(c)
	if user.Role == models.RoleLecturer && class.LecturerID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the lecturer for this class"})
	}
	if user.Role == models.RoleStudent {
		enrolled, err := h.classes.IsEnrolled(class.ID, user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if !enrolled {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not enrolled in this class"})
		}
	}

	students, err := h.classes.ListStudents(class.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(students)
}
