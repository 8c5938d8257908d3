package repositories

import (
	"learnify/database"
	"learnify/models"
)

// UserRepository handles user data operations
type UserRepository struct{}

// NewUserRepository creates a new user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := database.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail retrieves a user matching the identity on either
// column. Login accepts both.
func (r *UserRepository) GetByUsernameOrEmail(identity string) (*models.User, error) {
	var user models.User
	err := database.DB.Where("username = ? OR email = ?", identity, identity).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return database.DB.Save(user).Error
}
