package service

import (
	"errors"

	"go-material-trade/internal/apperr"
	"go-material-trade/internal/model"
	"go-material-trade/internal/repository"
	"go-material-trade/pkg/validator"

	"github.com/google/uuid"
)

type MaterialService interface {
	Create(material *model.Material) error
	List() ([]model.Material, error)
	Get(id uuid.UUID) (*model.Material, error)
	Update(id uuid.UUID, req *model.Material) (*model.Material, error)
	Delete(id uuid.UUID) error
}

type materialService struct {
	repo repository.MaterialRepository
}

func NewMaterialService(repo repository.MaterialRepository) MaterialService {
	return &materialService{repo: repo}
}

func (s *materialService) Create(material *model.Material) error {
	errs := validator.ValidateStruct(material)
	taken, err := s.nameTaken(material.MaterialName, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		errs = append(errs, validator.FieldError{
			Field:   "materialName",
			Message: "Material name must be unique",
		})
	}
	if len(errs) > 0 {
		return &apperr.ValidationError{Fields: errs}
	}

	return apperr.FromStore(s.repo.Create(material))
}

func (s *materialService) List() ([]model.Material, error) {
	materials, err := s.repo.FindAll()
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return materials, nil
}

func (s *materialService) Get(id uuid.UUID) (*model.Material, error) {
	material, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return material, nil
}

func (s *materialService) Update(id uuid.UUID, req *model.Material) (*model.Material, error) {
	errs := validator.ValidateStruct(req)
	taken, err := s.nameTaken(req.MaterialName, id)
	if err != nil {
		return nil, err
	}
	if taken {
		errs = append(errs, validator.FieldError{
			Field:   "materialName",
			Message: "Material name must be unique",
		})
	}
	if len(errs) > 0 {
		return nil, &apperr.ValidationError{Fields: errs}
	}

	material, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.FromStore(err)
	}

	material.MaterialName = req.MaterialName
	if err := s.repo.Update(material); err != nil {
		return nil, apperr.FromStore(err)
	}
	return material, nil
}

func (s *materialService) Delete(id uuid.UUID) error {
	return apperr.FromStore(s.repo.Delete(id))
}

// nameTaken is the advisory read-then-validate pre-check. The unique index
// remains authoritative: a concurrent create that slips past this check
// still fails at the store as a constraint violation. An absent row means
// the name is free; any other lookup failure is a store error, not a verdict.
func (s *materialService) nameTaken(name string, self uuid.UUID) (bool, error) {
	if name == "" {
		return false, nil
	}
	existing, err := s.repo.FindByName(name)
	switch mapped := apperr.FromStore(err); {
	case mapped == nil:
		return existing.ID != self, nil
	case errors.Is(mapped, apperr.ErrNotFound):
		return false, nil
	default:
		return false, mapped
	}
}
