package model

type Review struct {
	DTO
	ProductId uint    `gorm:"not null;index;uniqueIndex:idx_reviews_product_customer" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductId" json:"product"`

	CustomerId   uint   `gorm:"not null;index;uniqueIndex:idx_reviews_product_customer" json:"customerId"`
	CustomerName string `json:"customerName"` // denormalized for display

	OrderId uint `gorm:"not null" json:"orderId"`

	Rating   int    `gorm:"not null" validate:"required,min=1,max=5" json:"rating"`
	Title    string `gorm:"not null" json:"title"`
	Comment  string `gorm:"type:text" json:"comment"`
	Verified bool   `gorm:"default:true" json:"verified"`
}

type Reviews []Review

type CreateReviewInput struct {
	ProductId uint   `validate:"required" json:"productId"`
	OrderId   uint   `validate:"required" json:"orderId"`
	Rating    int    `validate:"required,min=1,max=5" json:"rating"`
	Title     string `validate:"required,min=3,max=100" json:"title"`
	Comment   string `validate:"required,min=10" json:"comment"`
}
