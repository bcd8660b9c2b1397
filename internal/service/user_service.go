package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/repository"
)

// ErrDuplicateUser is returned when registering an already-taken username.
var ErrDuplicateUser = errors.New("user already exists")

// UserService defines business operations around users.
type UserService interface {
	Register(input *model.CreateUserInput) (*model.UserDTO, error)
	Get(id uint) (*model.UserDTO, error)
	Update(id uint, input *model.UpdateUserInput) (*model.UserDTO, error)
	List() ([]*model.UserDTO, error)
	Delete(id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(input *model.CreateUserInput) (*model.UserDTO, error) {
	if existing, _ := s.repo.FindByUsername(input.Username); existing != nil {
		return nil, ErrDuplicateUser
	}
	if err := model.CheckUsernameFormat(input.Username); err != nil {
		return nil, err
	}
	if err := model.CheckEmailFormat(input.Email); err != nil {
		return nil, err
	}
	if err := model.CheckPasswordFormat(input.Password); err != nil {
		return nil, err
	}

	u := model.UserFromCreateInput(input)
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.Password = string(hash)

	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return u.ToDTO(), nil
}

func (s *userService) Get(id uint) (*model.UserDTO, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return u.ToDTO(), nil
}

func (s *userService) Update(id uint, input *model.UpdateUserInput) (*model.UserDTO, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := u.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Username != nil {
		if err := u.SetUsername(*input.Username); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := u.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u.ToDTO(), nil
}

func (s *userService) List() ([]*model.UserDTO, error) {
	users, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.UserDTO, len(users))
	for i, u := range users {
		dtos[i] = u.ToDTO()
	}
	return dtos, nil
}

func (s *userService) Delete(id uint) error {
	return s.repo.Delete(id)
}
