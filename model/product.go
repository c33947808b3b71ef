package model

type Category struct {
	DTO
	Name   string  `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Slug   string  `gorm:"uniqueIndex" json:"slug"`
	Image  *string `json:"image"`
	Active bool    `gorm:"default:true" json:"active"`
}

type Product struct {
	DTO
	Name           string   `gorm:"not null;index" validate:"required" json:"name"`
	Slug           string   `gorm:"uniqueIndex" json:"slug"`
	Description    string   `gorm:"type:text" json:"description"`
	Price          float64  `gorm:"type:decimal(10,2);not null" validate:"required,gt=0" json:"price"`
	CompareAtPrice *float64 `gorm:"type:decimal(10,2)" json:"compareAtPrice"`

	CategoryId uint     `gorm:"index" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryId" json:"category"`

	Sizes  StringArray `gorm:"type:text" json:"sizes"`
	Colors StringArray `gorm:"type:text" json:"colors"`

	Images []ProductImage `gorm:"foreignKey:ProductId" json:"images"`

	Stock             int  `gorm:"not null;default:0" json:"stock"`
	LowStockThreshold int  `gorm:"default:5" json:"lowStockThreshold"`
	Active            bool `gorm:"default:true" json:"active"`
}

type Products []Product

type ProductImage struct {
	DTO
	ProductId uint    `gorm:"not null;index" json:"productId"`
	Url       string  `gorm:"type:varchar(255)" validate:"required,url" json:"url"`
	PublicID  *string `json:"publicId"`
	IsPrimary bool    `json:"isPrimary"`
}

type CreateProductInput struct {
	Name              string   `validate:"required" json:"name"`
	Description       string   `json:"description"`
	Price             float64  `validate:"required,gt=0" json:"price"`
	CompareAtPrice    *float64 `validate:"omitempty,gt=0" json:"compareAtPrice"`
	CategoryId        uint     `validate:"required" json:"categoryId"`
	Sizes             []string `json:"sizes"`
	Colors            []string `json:"colors"`
	Images            []string `json:"images"`
	Stock             int      `validate:"gte=0" json:"stock"`
	LowStockThreshold int      `json:"lowStockThreshold"`
}

type EditProductInput struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `validate:"omitempty,gt=0" json:"price"`
	CompareAtPrice    *float64 `json:"compareAtPrice"`
	CategoryId        *uint    `json:"categoryId"`
	Sizes             []string `json:"sizes"`
	Colors            []string `json:"colors"`
	Stock             *int     `validate:"omitempty,gte=0" json:"stock"`
	LowStockThreshold *int     `json:"lowStockThreshold"`
	Active            *bool    `json:"active"`
}

type FilterProduct struct {
	Pagination
	SearchKey  string   `json:"searchKey"`
	CategoryId *uint    `json:"categoryId"`
	MinPrice   *float64 `json:"minPrice"`
	MaxPrice   *float64 `json:"maxPrice"`
	Sort       string   `json:"sort"` // price_asc, price_desc, newest
	Active     *bool    `json:"active"`
}
