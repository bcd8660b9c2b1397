package service

import (
	"errors"

	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/repository"
)

// ErrNotOwner is returned when a user tries to mutate a list they do not own.
var ErrNotOwner = errors.New("shopping list belongs to another user")

// ShoppingListService defines business operations around shopping lists.
// Reads are open to any authenticated user; mutations are owner-only.
type ShoppingListService interface {
	Create(input *model.CreateShoppingListInput, userID uint) (*model.ShoppingListDTO, error)
	Get(id uint) (*model.ShoppingListDTO, error)
	List(userID uint, titleQuery string, p *repository.Pagination) ([]*model.ShoppingListDTO, error)
	Update(id, userID uint, input *model.UpdateShoppingListInput) (*model.ShoppingListDTO, error)
	Delete(id, userID uint) error
}

type shoppingListService struct {
	repo repository.ShoppingListRepository
}

// NewShoppingListService constructs a ShoppingListService.
func NewShoppingListService(repo repository.ShoppingListRepository) ShoppingListService {
	return &shoppingListService{repo: repo}
}

func (s *shoppingListService) Create(input *model.CreateShoppingListInput, userID uint) (*model.ShoppingListDTO, error) {
	if err := model.CheckNotBlank(input.Title); err != nil {
		return nil, err
	}
	l := model.ShoppingListFromCreateInput(input, userID)
	if err := s.repo.Create(l); err != nil {
		return nil, err
	}
	return l.ToDTO(), nil
}

func (s *shoppingListService) Get(id uint) (*model.ShoppingListDTO, error) {
	l, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return l.ToDTO(), nil
}

func (s *shoppingListService) List(userID uint, titleQuery string, p *repository.Pagination) ([]*model.ShoppingListDTO, error) {
	lists, err := s.repo.ListByUser(userID, titleQuery, p)
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.ShoppingListDTO, len(lists))
	for i := range lists {
		dtos[i] = lists[i].ToDTO()
	}
	return dtos, nil
}

func (s *shoppingListService) Update(id, userID uint, input *model.UpdateShoppingListInput) (*model.ShoppingListDTO, error) {
	l, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if l.UserID != userID {
		return nil, ErrNotOwner
	}

	if input.Title != nil && *input.Title != "" {
		// a blank title never overwrites the existing one
		if err := l.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		l.SetDescription(*input.Description)
	}

	if err := s.repo.Update(l); err != nil {
		return nil, err
	}
	return l.ToDTO(), nil
}

func (s *shoppingListService) Delete(id, userID uint) error {
	l, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if l.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.Delete(id)
}
