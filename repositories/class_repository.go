package repositories

import (
	"time"

	"learnify/database"
	"learnify/models"

	"gorm.io/gorm/clause"
)

// ClassRepository handles class and enrollment data operations
type ClassRepository struct{}

// NewClassRepository creates a new class repository
func NewClassRepository() *ClassRepository {
	return &ClassRepository{}
}

// ClassWithLecturer is a class row joined with its lecturer's details.
type ClassWithLecturer struct {
	models.Class
	LecturerName  string `json:"lecturer_name"`
	LecturerEmail string `json:"lecturer_email,omitempty"`
}

// EnrolledStudent is one row of a class roster.
type EnrolledStudent struct {
	ID         uint      `json:"id"`
	FullName   string    `json:"full_name"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Create creates a new class
func (r *ClassRepository) Create(class *models.Class) error {
	return database.DB.Create(class).Error
}

// GetByID retrieves a class by id
func (r *ClassRepository) GetByID(id uint) (*models.Class, error) {
	var class models.Class
	err := database.DB.First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// GetByCode retrieves a class by its join code
func (r *ClassRepository) GetByCode(code string) (*models.Class, error) {
	var class models.Class
	err := database.DB.Where("code = ?", code).First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// GetWithLecturer retrieves a class with its lecturer's name and email
func (r *ClassRepository) GetWithLecturer(id uint) (*ClassWithLecturer, error) {
	var row ClassWithLecturer
	err := database.DB.Model(&models.Class{}).
		Select("classes.*, users.full_name AS lecturer_name, users.email AS lecturer_email").
		Joins("JOIN users ON users.id = classes.lecturer_id").
		Where("classes.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListForStudent retrieves classes the student is enrolled in
func (r *ClassRepository) ListForStudent(studentID uint) ([]ClassWithLecturer, error) {
	var rows []ClassWithLecturer
	err := database.DB.Model(&models.Class{}).
		Select("classes.*, users.full_name AS lecturer_name").
		Joins("JOIN enrollments ON enrollments.class_id = classes.id").
		Joins("JOIN users ON users.id = classes.lecturer_id").
		Where("enrollments.student_id = ?", studentID).
		Find(&rows).Error
	return rows, err
}

// ListForLecturer retrieves classes owned by the lecturer
func (r *ClassRepository) ListForLecturer(lecturerID uint) ([]ClassWithLecturer, error) {
	var rows []ClassWithLecturer
	err := database.DB.Model(&models.Class{}).
		Select("classes.*, users.full_name AS lecturer_name").
		Joins("JOIN users ON users.id = classes.lecturer_id").
		Where("classes.lecturer_id = ?", lecturerID).
		Find(&rows).Error
	return rows, err
}

// ListAll retrieves every class
func (r *ClassRepository) ListAll() ([]ClassWithLecturer, error) {
	var rows []ClassWithLecturer
	err := database.DB.Model(&models.Class{}).
		Select("classes.*, users.full_name AS lecturer_name").
		Joins("JOIN users ON users.id = classes.lecturer_id").
		Find(&rows).Error
	return rows, err
}

// Enroll inserts an enrollment row. Joining a class twice is a no-op.
func (r *ClassRepository) Enroll(classID, studentID uint) error {
	enrollment := models.Enrollment{ClassID: classID, StudentID: studentID}
	return database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollment).Error
}

// IsEnrolled checks whether the student is enrolled in the class
func (r *ClassRepository) IsEnrolled(classID, studentID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Enrollment{}).
		Where("class_id = ? AND student_id = ?", classID, studentID).
		Count(&count).Error
	return count > 0, err
}

// ListStudents retrieves the roster of a class ordered by name
func (r *ClassRepository) ListStudents(classID uint) ([]EnrolledStudent, error) {
	var rows []EnrolledStudent
	err := database.DB.Model(&models.Enrollment{}).
		Select("users.id, users.full_name, users.username, users.email, enrollments.enrolled_at").
		Joins("JOIN users ON users.id = enrollments.student_id").
		Where("enrollments.class_id = ?", classID).
		Order("users.full_name").
		Find(&rows).Error
	return rows, err
}
