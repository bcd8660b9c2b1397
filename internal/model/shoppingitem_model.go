package model

import (
	"time"

	"gorm.io/gorm"
)

// ShoppingItem represents a single line item in a shopping list.
type ShoppingItem struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string         `gorm:"type:varchar(120);not null" json:"name"`
	Quantity       float64        `gorm:"not null;default:0" json:"quantity"`
	Unit           string         `gorm:"type:varchar(60)" json:"unit"`
	ShoppingListID uint           `gorm:"not null;index" json:"shopping_list_id"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the name of the table for ShoppingItem.
func (ShoppingItem) TableName() string {
	return "shopping_items"
}

// ShoppingItemDTO is the data transfer object for a shopping item.
type ShoppingItemDTO struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// CreateShoppingItemInput defines expected fields for adding an item.
// Quantity and unit take defaults when omitted.
type CreateShoppingItemInput struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

// UpdateShoppingItemInput carries optional fields for an item update.
type UpdateShoppingItemInput struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

// ToDTO converts a ShoppingItem model to its DTO.
func (i *ShoppingItem) ToDTO() *ShoppingItemDTO {
	return &ShoppingItemDTO{
		ID:       i.ID,
		Name:     i.Name,
		Quantity: i.Quantity,
		Unit:     i.Unit,
	}
}

// ShoppingItemFromCreateInput maps CreateShoppingItemInput to the model.
func ShoppingItemFromCreateInput(input *CreateShoppingItemInput, listID uint) *ShoppingItem {
	now := time.Now()
	item := &ShoppingItem{
		Name:           input.Name,
		Quantity:       0,
		Unit:           "units",
		ShoppingListID: listID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	return item
}

// SetName updates the item name; an item name is never blank.
func (i *ShoppingItem) SetName(name string) error {
	if err := CheckNotBlank(name); err != nil {
		return err
	}
	i.Name = name
	return nil
}

// SetQuantity updates the quantity.
func (i *ShoppingItem) SetQuantity(quantity float64) {
	i.Quantity = quantity
}

// SetUnit updates the unit.
func (i *ShoppingItem) SetUnit(unit string) {
	i.Unit = unit
}
