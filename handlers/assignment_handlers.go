package handlers

import (
	"errors"
	"time"

	"learnify/middleware"
	"learnify/models"
	"learnify/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AssignmentHandlers struct {
	assignments *repositories.AssignmentRepository
	classes     *repositories.ClassRepository
}

func NewAssignmentHandlers(assignments *repositories.AssignmentRepository, classes *repositories.ClassRepository) *AssignmentHandlers {
	return &AssignmentHandlers{assignments: assignments, classes: classes}
}

// ListForClass returns a class's assignments, newest first.
func (h *AssignmentHandlers) ListForClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	assignments, err := h.assignments.ListForClass(uint(classID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(assignments)
}

type createAssignmentRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

// Create adds an assignment to a class. A lecturer can only target classes
// they own; an admin can target any class.
func (h *AssignmentHandlers) Create(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	var req createAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	class, err := h.classes.GetByID(uint(classID))
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

	assignment := models.Assignment{
		ClassID:     class.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		CreatedBy:   user.ID,
	}

	if err := h.assignments.Create(&assignment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

// Get returns one assignment.
func (h *AssignmentHandlers) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment id"})
	}

	assignment, err := h.assignments.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(assignment)
}
