package model

type Notification struct {
	DTO
	Type        string  `gorm:"not null;index" json:"type"` // order, stock, delivery, product, user, payment
	Title       string  `gorm:"not null" json:"title"`
	Message     string  `gorm:"type:text" json:"message"`
	RelatedId   *uint   `json:"relatedId,omitempty"`
	RelatedType *string `json:"relatedType,omitempty"`
	Unread      bool    `gorm:"default:true;index" json:"unread"`
}

type Notifications []Notification

type FilterNotification struct {
	Pagination
	Type   string `json:"type"`
	Unread *bool  `json:"unread"`
}
