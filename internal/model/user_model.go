package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered user who owns shopping lists.
type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username      string         `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Name          string         `gorm:"type:varchar(150);not null" json:"name"`
	Email         string         `gorm:"type:varchar(256);not null" json:"email"`
	Password      string         `gorm:"type:varchar(256);not null" json:"-"`
	ShoppingLists []ShoppingList `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"shopping_lists,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the name of the table for User.
func (User) TableName() string {
	return "users"
}

// UserDTO is used for sending user data in HTTP responses.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserInput defines expected fields for registering a user.
type CreateUserInput struct {
	Username string `json:"username" binding:"required,nospace,max=80"`
	Name     string `json:"name" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,emailshape,max=256"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserInput carries optional fields for a user update; each field is
// validated independently by the model setters.
type UpdateUserInput struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
}

// ToDTO converts the User model into a UserDTO for responses.
func (u *User) ToDTO() *UserDTO {
	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserFromCreateInput maps CreateUserInput to the User model. The password
// field still holds the plaintext; the service layer hashes it before save.
func UserFromCreateInput(input *CreateUserInput) *User {
	now := time.Now()
	return &User{
		Username:  input.Username,
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetName updates the display name after validating it.
func (u *User) SetName(name string) error {
	if err := CheckNotBlank(name); err != nil {
		return err
	}
	u.Name = name
	return nil
}

// SetUsername updates the username after validating it.
func (u *User) SetUsername(username string) error {
	if err := CheckUsernameFormat(username); err != nil {
		return err
	}
	u.Username = username
	return nil
}

// SetEmail updates the email after validating its shape.
func (u *User) SetEmail(email string) error {
	if err := CheckEmailFormat(email); err != nil {
		return err
	}
	u.Email = email
	return nil
}
