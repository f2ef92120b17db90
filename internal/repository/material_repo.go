package repository

import (
	"go-material-trade/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(material *model.Material) error
	FindAll() ([]model.Material, error)
	FindByID(id uuid.UUID) (*model.Material, error)
	FindByName(name string) (*model.Material, error)
	Update(material *model.Material) error
	Delete(id uuid.UUID) error
}

type materialRepo struct {
	db *gorm.DB
}

func NewMaterialRepo(db *gorm.DB) MaterialRepository {
	return &materialRepo{db}
}

func (r *materialRepo) Create(material *model.Material) error {
	return r.db.Create(material).Error
}

func (r *materialRepo) FindAll() ([]model.Material, error) {
	// Non-nil even when empty, so the list endpoint serializes [] not null
	materials := []model.Material{}
	err := r.db.Find(&materials).Error
	return materials, err
}

func (r *materialRepo) FindByID(id uuid.UUID) (*model.Material, error) {
	var material model.Material
	err := r.db.First(&material, "id = ?", id).Error
	return &material, err
}

func (r *materialRepo) FindByName(name string) (*model.Material, error) {
	var material model.Material
	err := r.db.First(&material, "material_name = ?", name).Error
	return &material, err
}

func (r *materialRepo) Update(material *model.Material) error {
	return r.db.Save(material).Error
}

func (r *materialRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Material{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
