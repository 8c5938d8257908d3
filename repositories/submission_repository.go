package repositories

import (
	"learnify/database"
	"learnify/models"
)

// SubmissionRepository handles submission data operations
type SubmissionRepository struct{}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{}
}

// SubmissionWithStudent is a submission row joined with the submitter.
type SubmissionWithStudent struct {
	models.Submission
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
}

// SubmissionWithContext is a submission row joined with its assignment
// and class, for the "my submissions" listing.
type SubmissionWithContext struct {
	models.Submission
	AssignmentTitle string `json:"assignment_title"`
	ClassID         uint   `json:"class_id"`
	ClassName       string `json:"class_name"`
}

// Create creates a new submission
func (r *SubmissionRepository) Create(submission *models.Submission) error {
	return database.DB.Create(submission).Error
}

// GetByID retrieves a submission by id
func (r *SubmissionRepository) GetByID(id uint) (*models.Submission, error) {
	var submission models.Submission
	err := database.DB.First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListForAssignment retrieves an assignment's submissions with student
// details, newest first
func (r *SubmissionRepository) ListForAssignment(assignmentID uint) ([]SubmissionWithStudent, error) {
	var rows []SubmissionWithStudent
	err := database.DB.Model(&models.Submission{}).
		Select("submissions.*, users.full_name AS student_name, users.email AS student_email").
		Joins("JOIN users ON users.id = submissions.student_id").
		Where("submissions.assignment_id = ?", assignmentID).
		Order("submissions.submitted_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListForStudent retrieves a student's own submissions, newest first
func (r *SubmissionRepository) ListForStudent(studentID uint) ([]SubmissionWithContext, error) {
	var rows []SubmissionWithContext
	err := database.DB.Model(&models.Submission{}).
		Select("submissions.*, assignments.title AS assignment_title, assignments.class_id AS class_id, classes.name AS class_name").
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Joins("JOIN classes ON classes.id = assignments.class_id").
		Where("submissions.student_id = ?", studentID).
		Order("submissions.submitted_at DESC").
		Find(&rows).Error
	return rows, err
}

// Update updates a submission
func (r *SubmissionRepository) Update(submission *models.Submission) error {
	return database.DB.Save(submission).Error
}

// Delete removes a submission row. The uploaded file stays on disk.
func (r *SubmissionRepository) Delete(id uint) error {
	return database.DB.Delete(&models.Submission{}, id).Error
}
