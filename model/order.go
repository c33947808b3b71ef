package model

import "time"

type Order struct {
	DTO
	OrderNumber string    `gorm:"uniqueIndex;size:30" json:"orderNumber"`
	CustomerId  uint      `gorm:"not null;index" json:"customerId"`
	Customer    *Customer `json:"customer,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderId" json:"items"`

	Subtotal float64 `gorm:"type:decimal(10,2)" json:"subtotal"`
	Shipping float64 `gorm:"type:decimal(10,2)" json:"shipping"`
	Tax      float64 `gorm:"type:decimal(10,2)" json:"tax"`
	Discount float64 `gorm:"type:decimal(10,2)" json:"discount"`
	Total    float64 `gorm:"type:decimal(10,2)" json:"total"`

	PromoCode *string `json:"promoCode,omitempty"`

	Status        string `gorm:"not null;default:'pending';index" json:"status"`
	PaymentMethod string `gorm:"not null" json:"paymentMethod"`
	PaymentStatus string `gorm:"not null;default:'pending'" json:"paymentStatus"`

	// Shipping address snapshot, copied at checkout.
	ShipName       string `json:"shipName"`
	ShipPhone      string `json:"shipPhone"`
	ShipLine1      string `json:"shipLine1"`
	ShipLine2      string `json:"shipLine2"`
	ShipCity       string `json:"shipCity"`
	ShipState      string `json:"shipState"`
	ShipPostalCode string `json:"shipPostalCode"`

	TrackingNumber *string    `json:"trackingNumber,omitempty"`
	DeliveredAt    *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
}

type Orders []Order

type OrderItem struct {
	DTO
	OrderId   uint    `gorm:"not null;index" json:"orderId"`
	ProductId uint    `gorm:"not null;index" json:"productId"`
	Name      string  `gorm:"not null" json:"name"` // product name snapshot
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

type CheckoutItemInput struct {
	ProductId uint   `validate:"required" json:"productId"`
	Quantity  int    `validate:"required,gt=0" json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type CheckoutInput struct {
	Items         []CheckoutItemInput `validate:"required,min=1,dive" json:"items"`
	AddressId     *uint               `json:"addressId"`
	ShipName      string              `json:"shipName"`
	ShipPhone     string              `json:"shipPhone"`
	ShipLine1     string              `json:"shipLine1"`
	ShipLine2     string              `json:"shipLine2"`
	ShipCity      string              `json:"shipCity"`
	ShipState     string              `json:"shipState"`
	ShipPostal    string              `json:"shipPostalCode"`
	PaymentMethod string              `validate:"required" json:"paymentMethod"`
	PromoCode     string              `json:"promoCode"`
}

type UpdateOrderStatusInput struct {
	Status         string  `validate:"required" json:"status"`
	TrackingNumber *string `json:"trackingNumber"`
}

type FilterOrder struct {
	Pagination
	Status    string `json:"status"`
	SearchKey string `json:"searchKey"`
}
