package service

import (
	"errors"

	"go-material-trade/internal/apperr"
	"go-material-trade/internal/model"
	"go-material-trade/internal/repository"
	"go-material-trade/pkg/validator"

	"github.com/google/uuid"
)

type UserService interface {
	Create(user *model.User) error
	List() ([]model.User, error)
	Get(id uuid.UUID) (*model.User, error)
	Update(id uuid.UUID, req *model.User) (*model.User, error)
	Delete(id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(user *model.User) error {
	errs := validator.ValidateStruct(user)
	taken, err := s.usernameTaken(user.Username, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		errs = append(errs, validator.FieldError{
			Field:   "username",
			Message: "Username must be unique",
		})
	}
	if len(errs) > 0 {
		return &apperr.ValidationError{Fields: errs}
	}

	return apperr.FromStore(s.repo.Create(user))
}

func (s *userService) List() ([]model.User, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return users, nil
}

func (s *userService) Get(id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return user, nil
}

func (s *userService) Update(id uuid.UUID, req *model.User) (*model.User, error) {
	errs := validator.ValidateStruct(req)
	taken, err := s.usernameTaken(req.Username, id)
	if err != nil {
		return nil, err
	}
	if taken {
		errs = append(errs, validator.FieldError{
			Field:   "username",
			Message: "Username must be unique",
		})
	}
	if len(errs) > 0 {
		return nil, &apperr.ValidationError{Fields: errs}
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.FromStore(err)
	}

	user.Username = req.Username
	if err := s.repo.Update(user); err != nil {
		return nil, apperr.FromStore(err)
	}
	return user, nil
}

func (s *userService) Delete(id uuid.UUID) error {
	return apperr.FromStore(s.repo.Delete(id))
}

// Advisory pre-check only; the unique index on username settles races. An
// absent row means the name is free; any other lookup failure is a store
// error, not a verdict.
func (s *userService) usernameTaken(username string, self uuid.UUID) (bool, error) {
	if username == "" {
		return false, nil
	}
	existing, err := s.repo.FindByUsername(username)
	switch mapped := apperr.FromStore(err); {
	case mapped == nil:
		return existing.ID != self, nil
	case errors.Is(mapped, apperr.ErrNotFound):
		return false, nil
	default:
		return false, mapped
	}
}
