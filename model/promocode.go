package model

import "time"

type PromoCode struct {
	DTO
	Code        string `gorm:"uniqueIndex;not null" json:"code"`
	Description string `gorm:"type:text" json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`

	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`

	DiscountType      string  `gorm:"not null" json:"discountType"` // percentage, fixed
	DiscountValue     float64 `gorm:"type:decimal(10,2);not null" json:"discountValue"`
	MaxDiscountAmount float64 `gorm:"type:decimal(10,2);default:0" json:"maxDiscountAmount"`
	MinPurchaseAmount float64 `gorm:"type:decimal(10,2);default:0" json:"minPurchaseAmount"`

	UsageLimit int `gorm:"default:0" json:"usageLimit"` // 0 = unlimited
	UsedCount  int `gorm:"default:0" json:"usedCount"`
}

type PromoCodes []PromoCode

type CreatePromoCodeInput struct {
	Code              string    `validate:"required,min=3,max=30" json:"code"`
	Description       string    `json:"description"`
	StartDate         time.Time `validate:"required" json:"startDate"`
	EndDate           time.Time `validate:"required" json:"endDate"`
	DiscountType      string    `validate:"required,oneof=percentage fixed" json:"discountType"`
	DiscountValue     float64   `validate:"required,gt=0" json:"discountValue"`
	MaxDiscountAmount float64   `validate:"gte=0" json:"maxDiscountAmount"`
	MinPurchaseAmount float64   `validate:"gte=0" json:"minPurchaseAmount"`
	UsageLimit        int       `validate:"gte=0" json:"usageLimit"`
}

type EditPromoCodeInput struct {
	Description       *string    `json:"description"`
	Active            *bool      `json:"active"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	DiscountValue     *float64   `validate:"omitempty,gt=0" json:"discountValue"`
	MaxDiscountAmount *float64   `validate:"omitempty,gte=0" json:"maxDiscountAmount"`
	MinPurchaseAmount *float64   `validate:"omitempty,gte=0" json:"minPurchaseAmount"`
	UsageLimit        *int       `validate:"omitempty,gte=0" json:"usageLimit"`
}

type ApplyPromoCodeInput struct {
	Code      string  `validate:"required" json:"code"`
	CartTotal float64 `validate:"required,gt=0" json:"cartTotal"`
}
