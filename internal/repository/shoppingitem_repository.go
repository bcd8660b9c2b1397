package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fuzumoe/shoplist-api/internal/model"
)

// ErrShoppingItemNotFound is returned when an item lookup matches no row.
var ErrShoppingItemNotFound = errors.New("shopping item not found")

// ShoppingItemRepository defines DB ops around shopping items.
type ShoppingItemRepository interface {
	Create(i *model.ShoppingItem) error
	FindByID(id uint) (*model.ShoppingItem, error)
	ListByList(listID uint, nameQuery string, p *Pagination) ([]model.ShoppingItem, error)
	Update(i *model.ShoppingItem) error
	Delete(id uint) error
}

type shoppingItemRepo struct {
	db *gorm.DB
}

// NewShoppingItemRepo returns a ShoppingItemRepository backed by GORM.
func NewShoppingItemRepo(db *gorm.DB) ShoppingItemRepository {
	return &shoppingItemRepo{db: db}
}

func (r *shoppingItemRepo) Create(i *model.ShoppingItem) error {
	return r.db.Create(i).Error
}

func (r *shoppingItemRepo) FindByID(id uint) (*model.ShoppingItem, error) {
	var i model.ShoppingItem
	if err := r.db.First(&i, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShoppingItemNotFound
		}
		return nil, err
	}
	return &i, nil
}

// ListByList returns a list's items, optionally filtered by a name
// substring and paginated. A nil Pagination returns everything.
func (r *shoppingItemRepo) ListByList(listID uint, nameQuery string, p *Pagination) ([]model.ShoppingItem, error) {
	q := r.db.Where("shopping_list_id = ?", listID)
	if nameQuery != "" {
		q = q.Where("name LIKE ?", "%"+nameQuery+"%")
	}
	if p != nil {
		q = q.Offset(p.Offset()).Limit(p.Limit())
	}

	var items []model.ShoppingItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingItemRepo) Update(i *model.ShoppingItem) error {
	return r.db.Save(i).Error
}

func (r *shoppingItemRepo) Delete(id uint) error {
	res := r.db.Delete(&model.ShoppingItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrShoppingItemNotFound
	}
	return nil
}
