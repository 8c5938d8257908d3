package models

import "time"

// Role values used by the authorization policy. The register endpoint stores
// whatever role string the client sends; these are the values the policy
// checks and the seed data use.
const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
	RoleAdmin    = "admin"
)

// User represents an account. Role is fixed at registration.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `gorm:"not null;default:student" json:"role"`
}

// Class is owned by a lecturer and joined by students via its code.
type Class struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `gorm:"not null" json:"name"`
	Code        string    `gorm:"uniqueIndex;not null" json:"code"`
	Description string    `json:"description"`
	LecturerID  uint      `gorm:"not null;index" json:"lecturer_id"`
	Lecturer    User      `gorm:"foreignKey:LecturerID" json:"-"`
}

// Enrollment links a student to a class, one row per pair.
type Enrollment struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ClassID    uint      `gorm:"not null;uniqueIndex:idx_class_student" json:"class_id"`
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_class_student" json:"student_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
}

// Assignment belongs to a class.
type Assignment struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	ClassID     uint       `gorm:"not null;index" json:"class_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	CreatedBy   uint       `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Submission records an uploaded file for an assignment. FileName is stored
// exactly as the client supplied it, including any path segments.
type Submission struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	AssignmentID uint      `gorm:"not null;index" json:"assignment_id"`
	StudentID    uint      `gorm:"not null;index" json:"student_id"`
	FileName     string    `gorm:"not null" json:"file_name"`
	FilePath     string    `gorm:"not null" json:"file_path"`
	Grade        *int      `json:"grade"`
	Feedback     *string   `json:"feedback"`
	SubmittedAt  time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}
