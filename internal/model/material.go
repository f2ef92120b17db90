package model

type Material struct {
	BaseModel
	MaterialName string `gorm:"type:varchar(255);uniqueIndex;not null" json:"materialName" validate:"required,min=3"`
}
