package model

import (
	"time"

	"gorm.io/gorm"
)

// ShoppingList represents one shopping list owned by a user.
type ShoppingList struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"type:varchar(160);not null" json:"title"`
	Description string         `gorm:"type:varchar(200)" json:"description"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Items       []ShoppingItem `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the name of the table for ShoppingList.
func (ShoppingList) TableName() string {
	return "shopping_lists"
}

// ShoppingListDTO is the data transfer object for a shopping list.
type ShoppingListDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateShoppingListInput defines expected fields for creating a list.
// Description may be empty; the title must not be.
type CreateShoppingListInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateShoppingListInput carries optional fields for a list update.
type UpdateShoppingListInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ToDTO converts a ShoppingList model to its DTO.
func (l *ShoppingList) ToDTO() *ShoppingListDTO {
	return &ShoppingListDTO{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
	}
}

// ShoppingListFromCreateInput maps CreateShoppingListInput to the model.
func ShoppingListFromCreateInput(input *CreateShoppingListInput, userID uint) *ShoppingList {
	now := time.Now()
	return &ShoppingList{
		Title:       input.Title,
		Description: input.Description,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetTitle updates the title; a list title is never blank.
func (l *ShoppingList) SetTitle(title string) error {
	if err := CheckNotBlank(title); err != nil {
		return err
	}
	l.Title = title
	return nil
}

// SetDescription updates the description.
func (l *ShoppingList) SetDescription(description string) {
	l.Description = description
}
