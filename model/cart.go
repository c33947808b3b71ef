package model

type CartItem struct {
	DTO
	CustomerId uint    `gorm:"not null;index;uniqueIndex:idx_cart_line" json:"customerId"`
	ProductId  uint    `gorm:"not null;uniqueIndex:idx_cart_line" json:"productId"`
	Product    Product `gorm:"foreignKey:ProductId" json:"product"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity"`
	Size       string  `gorm:"default:'';uniqueIndex:idx_cart_line" json:"size"`
	Color      string  `gorm:"default:'';uniqueIndex:idx_cart_line" json:"color"`
}

type AddCartItemInput struct {
	ProductId uint   `validate:"required" json:"productId"`
	Quantity  int    `validate:"required,gt=0" json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type UpdateCartItemInput struct {
	Quantity int `validate:"required,gt=0" json:"quantity"`
}
