package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fuzumoe/shoplist-api/internal/model"
)

// ErrShoppingListNotFound is returned when a list lookup matches no row.
var ErrShoppingListNotFound = errors.New("shopping list not found")

// ShoppingListRepository defines DB ops around shopping lists.
type ShoppingListRepository interface {
	Create(l *model.ShoppingList) error
	FindByID(id uint) (*model.ShoppingList, error)
	ListByUser(userID uint, titleQuery string, p *Pagination) ([]model.ShoppingList, error)
	Update(l *model.ShoppingList) error
	Delete(id uint) error
}

type shoppingListRepo struct {
	db *gorm.DB
}

// NewShoppingListRepo returns a ShoppingListRepository backed by GORM.
func NewShoppingListRepo(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepo{db: db}
}

func (r *shoppingListRepo) Create(l *model.ShoppingList) error {
	return r.db.Create(l).Error
}

func (r *shoppingListRepo) FindByID(id uint) (*model.ShoppingList, error) {
	var l model.ShoppingList
	if err := r.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShoppingListNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListByUser returns the user's lists, optionally filtered by a title
// substring and paginated. A nil Pagination returns everything.
func (r *shoppingListRepo) ListByUser(userID uint, titleQuery string, p *Pagination) ([]model.ShoppingList, error) {
	q := r.db.Where("user_id = ?", userID)
	if titleQuery != "" {
		q = q.Where("title LIKE ?", "%"+titleQuery+"%")
	}
	if p != nil {
		q = q.Offset(p.Offset()).Limit(p.Limit())
	}

	var lists []model.ShoppingList
	if err := q.Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepo) Update(l *model.ShoppingList) error {
	return r.db.Save(l).Error
}

func (r *shoppingListRepo) Delete(id uint) error {
	res := r.db.Delete(&model.ShoppingList{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrShoppingListNotFound
	}
	return nil
}
