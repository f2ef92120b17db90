package model

import "github.com/google/uuid"

// Transaction records a trade of one material between two users. The three
// foreign keys are independent; a vendor may also be the customer. Their
// existence is enforced by the store's foreign-key constraints, not by an
// application-level lookup.
type Transaction struct {
	BaseModel
	VendorID   uuid.UUID `gorm:"type:uuid;not null" json:"vendorId"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null" json:"customerId"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null" json:"materialId"`

	// Relations, preloaded on read paths only
	Vendor   *User     `gorm:"foreignKey:VendorID;references:ID" json:"vendor,omitempty"`
	Customer *User     `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Material *Material `gorm:"foreignKey:MaterialID;references:ID" json:"material,omitempty"`
}
