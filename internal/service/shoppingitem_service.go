package service

import (
	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/repository"
)

// ShoppingItemService defines business operations around shopping items.
// Items are always addressed through their parent list.
type ShoppingItemService interface {
	Create(listID, userID uint, input *model.CreateShoppingItemInput) (*model.ShoppingItemDTO, error)
	Get(listID, itemID uint) (*model.ShoppingItemDTO, error)
	List(listID uint, nameQuery string, p *repository.Pagination) ([]*model.ShoppingItemDTO, error)
	Update(listID, itemID, userID uint, input *model.UpdateShoppingItemInput) (*model.ShoppingItemDTO, error)
	Delete(listID, itemID, userID uint) error
}

type shoppingItemService struct {
	items repository.ShoppingItemRepository
	lists repository.ShoppingListRepository
}

// NewShoppingItemService constructs a ShoppingItemService.
func NewShoppingItemService(
	items repository.ShoppingItemRepository,
	lists repository.ShoppingListRepository,
) ShoppingItemService {
	return &shoppingItemService{items: items, lists: lists}
}

// parentList loads the list and, when mustOwn is set, enforces ownership.
func (s *shoppingItemService) parentList(listID, userID uint, mustOwn bool) (*model.ShoppingList, error) {
	l, err := s.lists.FindByID(listID)
	if err != nil {
		return nil, err
	}
	if mustOwn && l.UserID != userID {
		return nil, ErrNotOwner
	}
	return l, nil
}

// itemInList loads an item and verifies it belongs to the given list.
func (s *shoppingItemService) itemInList(listID, itemID uint) (*model.ShoppingItem, error) {
	i, err := s.items.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if i.ShoppingListID != listID {
		return nil, repository.ErrShoppingItemNotFound
	}
	return i, nil
}

func (s *shoppingItemService) Create(listID, userID uint, input *model.CreateShoppingItemInput) (*model.ShoppingItemDTO, error) {
	if _, err := s.parentList(listID, userID, true); err != nil {
		return nil, err
	}
	if err := model.CheckNotBlank(input.Name); err != nil {
		return nil, err
	}

	i := model.ShoppingItemFromCreateInput(input, listID)
	if err := s.items.Create(i); err != nil {
		return nil, err
	}
	return i.ToDTO(), nil
}

func (s *shoppingItemService) Get(listID, itemID uint) (*model.ShoppingItemDTO, error) {
	if _, err := s.lists.FindByID(listID); err != nil {
		return nil, err
	}
	i, err := s.itemInList(listID, itemID)
	if err != nil {
		return nil, err
	}
	return i.ToDTO(), nil
}

func (s *shoppingItemService) List(listID uint, nameQuery string, p *repository.Pagination) ([]*model.ShoppingItemDTO, error) {
	if _, err := s.lists.FindByID(listID); err != nil {
		return nil, err
	}
	items, err := s.items.ListByList(listID, nameQuery, p)
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.ShoppingItemDTO, len(items))
	for i := range items {
		dtos[i] = items[i].ToDTO()
	}
	return dtos, nil
}

func (s *shoppingItemService) Update(listID, itemID, userID uint, input *model.UpdateShoppingItemInput) (*model.ShoppingItemDTO, error) {
	if _, err := s.parentList(listID, userID, true); err != nil {
		return nil, err
	}
	i, err := s.itemInList(listID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		// a blank name never overwrites the existing one
		if err := i.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Quantity != nil {
		i.SetQuantity(*input.Quantity)
	}
	if input.Unit != nil {
		i.SetUnit(*input.Unit)
	}

	if err := s.items.Update(i); err != nil {
		return nil, err
	}
	return i.ToDTO(), nil
}

func (s *shoppingItemService) Delete(listID, itemID, userID uint) error {
	if _, err := s.parentList(listID, userID, true); err != nil {
		return err
	}
	i, err := s.itemInList(listID, itemID)
	if err != nil {
		return err
	}
	return s.items.Delete(i.ID)
}
