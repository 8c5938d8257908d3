package repositories

import (
	"learnify/database"
	"learnify/models"
)

// AssignmentRepository handles assignment data operations
type AssignmentRepository struct{}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return database.DB.Create(assignment).Error
}

// GetByID retrieves an assignment by id
func (r *AssignmentRepository) GetByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := database.DB.First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListForClass retrieves a class's assignments, newest first
func (r *AssignmentRepository) ListForClass(classID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := database.DB.
		Where("class_id = ?", classID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}
