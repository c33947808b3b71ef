package helper

import (
	"log"
	"time"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var promoScheduler gocron.Scheduler

// AutoExpirePromoCodes deactivates promo codes whose validity window has
// passed, so expired codes stop showing up as active in the admin list.
func AutoExpirePromoCodes() {
	log.Println("[CRON] AutoExpirePromoCodes triggered")

	result := database.DB.Model(&model.PromoCode{}).
		Where("active = ? AND end_date < ?", true, time.Now()).
		Update("active", false)

	if result.Error != nil {
		log.Printf("failed to expire promo codes: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d expired promo codes", result.RowsAffected)
	}
}

func StartPromoExpiryScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	promoScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoExpirePromoCodes),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Promo expiry scheduler started (00:05 daily)")
}

func StopPromoExpiryScheduler() {
	if promoScheduler != nil {
		_ = promoScheduler.Shutdown()
	}
}
