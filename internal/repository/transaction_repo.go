package repository

import (
	"go-material-trade/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *model.Transaction) error
	// FindAllWithRelations and FindWithRelations preload vendor, customer
	// and material for the joined read paths.
	FindAllWithRelations() ([]model.Transaction, error)
	FindWithRelations(id uuid.UUID) (*model.Transaction, error)
	// FindByID returns the bare row, used by the mutation paths.
	FindByID(id uuid.UUID) (*model.Transaction, error)
	Update(tx *model.Transaction) error
	Delete(id uuid.UUID) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepo) FindAllWithRelations() ([]model.Transaction, error) {
	// Non-nil even when empty, so the list endpoint serializes [] not null
	transactions := []model.Transaction{}
	err := r.db.Preload("Vendor").Preload("Customer").Preload("Material").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindWithRelations(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Vendor").Preload("Customer").Preload("Material").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) Update(tx *model.Transaction) error {
	return r.db.Save(tx).Error
}

func (r *transactionRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
