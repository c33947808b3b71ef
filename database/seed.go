package database

import (
	"log"
	"time"

	"shop_manager/constants"
	"shop_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123456"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "admin123456"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Clothing", Slug: "clothing"},
		{Name: "Footwear", Slug: "footwear"},
		{Name: "Accessories", Slug: "accessories"},
		{Name: "Electronics", Slug: "electronics"},
	}
	for _, category := range categories {
		if err := db.Where(model.Category{Slug: category.Slug}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed data for category:", category.Name, "error:", err)
		}
	}

	now := time.Now()
	promoCodes := []model.PromoCode{
		{
			Code:              "WELCOME10",
			Description:       "10% off your first order",
			Active:            true,
			StartDate:         now,
			EndDate:           now.AddDate(1, 0, 0),
			DiscountType:      constants.DISCOUNT_PERCENTAGE,
			DiscountValue:     10,
			MaxDiscountAmount: 200,
			MinPurchaseAmount: 0,
			UsageLimit:        0,
		},
	}
	for _, promo := range promoCodes {
		if err := db.Where(model.PromoCode{Code: promo.Code}).FirstOrCreate(&promo).Error; err != nil {
			log.Println("failed to seed data for promo code:", promo.Code, "error:", err)
		}
	}
}
