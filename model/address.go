package model

type Address struct {
	DTO
	CustomerId uint    `gorm:"not null;index" json:"customerId"`
	Label      *string `json:"label"` // home, office...
	Line1      string  `gorm:"not null" validate:"required" json:"line1"`
	Line2      *string `json:"line2"`
	City       string  `gorm:"not null" validate:"required" json:"city"`
	State      string  `json:"state"`
	PostalCode string  `gorm:"not null" validate:"required" json:"postalCode"`
	Phone      string  `json:"phone"`
	IsDefault  bool    `gorm:"default:false" json:"isDefault"`
}

type CreateAddressInput struct {
	Label      *string `json:"label"`
	Line1      string  `validate:"required" json:"line1"`
	Line2      *string `json:"line2"`
	City       string  `validate:"required" json:"city"`
	State      string  `json:"state"`
	PostalCode string  `validate:"required" json:"postalCode"`
	Phone      string  `json:"phone"`
	IsDefault  bool    `json:"isDefault"`
}
