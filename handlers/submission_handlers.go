package handlers

import (
	"errors"
	"mime"
	"mime/multipart"
	"path/filepath"

	"learnify/middleware"
	"learnify/models"
	"learnify/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubmissionHandlers struct {
	submissions *repositories.SubmissionRepository
	uploadsDir  string
}

func NewSubmissionHandlers(submissions *repositories.SubmissionRepository, uploadsDir string) *SubmissionHandlers {
	return &SubmissionHandlers{submissions: submissions, uploadsDir: uploadsDir}
}

// Submit stores an uploaded file under its client-supplied name and records
// the submission. The filename is not sanitized: path segments in it move
// the write outside the uploads directory, and a repeated name overwrites
// the earlier file. Both behaviors are the training target and must stay.
func (h *SubmissionHandlers) Submit(c *fiber.Ctx) error {
	assignmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment id"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	name := rawFileName(file)
	dst := filepath.Join(h.uploadsDir, name)
	if err := c.SaveFile(file, dst); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	submission := models.Submission{
		AssignmentID: uint(assignmentID),
		StudentID:    middleware.CurrentUser(c).ID,
		FileName:     name,
		FilePath:     dst,
	}

	if err := h.submissions.Create(&submission); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":    "File uploaded successfully",
		"submission": submission,
		"file_path":  dst,
	})
}

// rawFileName recovers the filename exactly as the client sent it.
// FileHeader.Filename has already been through filepath.Base in the standard
// library, which would strip the path segments this endpoint must keep.
func rawFileName(file *multipart.FileHeader) string {
	if cd := file.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name, ok := params["filename"]; ok && name != "" {
				return name
			}
		}
	}
	return file.Filename
}

// ListForAssignment returns an assignment's submissions with student details.
func (h *SubmissionHandlers) ListForAssignment(c *fiber.Ctx) error {
	assignmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment id"})
	}

	rows, err := h.submissions.ListForAssignment(uint(assignmentID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rows)
}

// My returns the caller's own submissions.
func (h *SubmissionHandlers) My(c *fiber.Ctx) error {
	rows, err := h.submissions.ListForStudent(middleware.CurrentUser(c).ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rows)
}

type gradeRequest struct {
	Grade    *int   `json:"grade"`
	Feedback string `json:"feedback"`
}

// Grade sets a submission's grade and feedback.
func (h *SubmissionHandlers) Grade(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid submission id"})
	}

	var req gradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Grade == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Grade is required"})
	}
	if *req.Grade < 0 || *req.Grade > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Grade must be between 0 and 100"})
	}

	submission, err := h.submissions.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Submission not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	submission.Grade = req.Grade
	if req.Feedback != "" {
		submission.Feedback = &req.Feedback
	}

	if err := h.submissions.Update(submission); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Submission graded", "submission": submission})
}

// Delete removes a submission row. The uploaded file is left in place.
func (h *SubmissionHandlers) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid submission id"})
	}

	if _, err := h.submissions.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Submission not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.submissions.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Submission deleted"})
}
