package model

type NewsletterSubscriber struct {
	DTO
	Email      string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Subscribed bool   `gorm:"default:true" json:"subscribed"`
}

type SubscribeNewsletterInput struct {
	Email string `validate:"required,email" json:"email"`
}

type BroadcastNewsletterInput struct {
	Subject string `validate:"required,min=3" json:"subject"`
	Body    string `validate:"required,min=10" json:"body"`
}
