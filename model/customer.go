package model

import "time"

type Customer struct {
	DTO
	Phone    string  `gorm:"uniqueIndex;not null" json:"phone"`
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`

	Otp          *string    `json:"-"`
	OtpExpiresAt *time.Time `json:"-"`
	Verified     bool       `gorm:"default:false" json:"verified"`

	AvatarUrl *string `json:"avatarUrl"`
	IsActive  bool    `gorm:"default:true" json:"isActive"`

	Addresses []Address `gorm:"foreignKey:CustomerId" json:"addresses"`
}

type Customers []Customer

type SendOtpInput struct {
	Phone string `validate:"required" json:"phone"`
}

type VerifyOtpInput struct {
	Phone string `validate:"required" json:"phone"`
	Otp   string `validate:"required,len=6" json:"otp"`
}

type EditCustomerInput struct {
	FullName  *string `json:"fullName"`
	Email     *string `validate:"omitempty,email" json:"email"`
	AvatarUrl *string `json:"avatarUrl"`
}

type FilterCustomer struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Phone     string `json:"phone"`
	Active    *bool  `json:"active"`
}
