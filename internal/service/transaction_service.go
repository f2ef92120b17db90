package service

import (
	"go-material-trade/internal/apperr"
	"go-material-trade/internal/model"
	"go-material-trade/internal/repository"
	"go-material-trade/pkg/validator"

	"github.com/google/uuid"
)

type TransactionService interface {
	Create(req *CreateTransactionRequest) (*model.Transaction, error)
	List() ([]model.Transaction, error)
	Get(id uuid.UUID) (*model.Transaction, error)
	Update(id uuid.UUID, req *UpdateTransactionRequest) (*model.Transaction, error)
	Delete(id uuid.UUID) error
}

// CreateTransactionRequest carries the three references as strings so that
// a malformed UUID surfaces as a field-level validation error rather than
// a decode failure. Referential existence is deliberately not checked here;
// that is the store's foreign-key constraint.
type CreateTransactionRequest struct {
	VendorID   string `json:"vendorId" validate:"required,uuid"`
	CustomerID string `json:"customerId" validate:"required,uuid"`
	MaterialID string `json:"materialId" validate:"required,uuid"`
}

// UpdateTransactionRequest accepts any subset of the three references;
// absent fields leave the stored value untouched.
type UpdateTransactionRequest struct {
	VendorID   *string `json:"vendorId" validate:"omitempty,uuid"`
	CustomerID *string `json:"customerId" validate:"omitempty,uuid"`
	MaterialID *string `json:"materialId" validate:"omitempty,uuid"`
}

type transactionService struct {
	repo repository.TransactionRepository
}

func NewTransactionService(repo repository.TransactionRepository) TransactionService {
	return &transactionService{repo: repo}
}

func (s *transactionService) Create(req *CreateTransactionRequest) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &apperr.ValidationError{Fields: errs}
	}

	tx := &model.Transaction{
		VendorID:   uuid.MustParse(req.VendorID),
		CustomerID: uuid.MustParse(req.CustomerID),
		MaterialID: uuid.MustParse(req.MaterialID),
	}
	if err := s.repo.Create(tx); err != nil {
		return nil, apperr.FromStore(err)
	}
	return tx, nil
}

func (s *transactionService) List() ([]model.Transaction, error) {
	transactions, err := s.repo.FindAllWithRelations()
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return transactions, nil
}

func (s *transactionService) Get(id uuid.UUID) (*model.Transaction, error) {
	tx, err := s.repo.FindWithRelations(id)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return tx, nil
}

func (s *transactionService) Update(id uuid.UUID, req *UpdateTransactionRequest) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &apperr.ValidationError{Fields: errs}
	}

	tx, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.FromStore(err)
	}

	if req.VendorID != nil {
		tx.VendorID = uuid.MustParse(*req.VendorID)
	}
	if req.CustomerID != nil {
		tx.CustomerID = uuid.MustParse(*req.CustomerID)
	}
	if req.MaterialID != nil {
		tx.MaterialID = uuid.MustParse(*req.MaterialID)
	}

	if err := s.repo.Update(tx); err != nil {
		return nil, apperr.FromStore(err)
	}
	return tx, nil
}

func (s *transactionService) Delete(id uuid.UUID) error {
	return apperr.FromStore(s.repo.Delete(id))
}
