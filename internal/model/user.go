package model

type User struct {
	BaseModel
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username" validate:"required"`
}
