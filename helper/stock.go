package helper

import (
	"fmt"
	"log"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/robfig/cron/v3"
)

var stockScheduler *cron.Cron

// lowStockNotified remembers which products were already flagged, so a
// product sitting under its threshold does not spam a notification on
// every scan. Reset when stock recovers.
var lowStockNotified = map[uint]bool{}

func StartLowStockScheduler() {
	stockScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := stockScheduler.AddFunc("*/5 * * * *", ScanLowStock)
	if err != nil {
		log.Printf("failed to start low stock scheduler: %v", err)
		return
	}

	stockScheduler.Start()
	log.Println("Low stock scheduler started (every 5 minutes)")
}

func StopLowStockScheduler() {
	if stockScheduler != nil {
		stockScheduler.Stop()
		log.Println("Low stock scheduler stopped")
	}
}

func ScanLowStock() {
	var products []model.Product
	if err := database.DB.
		Where("active = ?", true).
		Find(&products).Error; err != nil {
		log.Printf("low stock scan failed: %v", err)
		return
	}

	for _, product := range products {
		if product.Stock <= product.LowStockThreshold {
			if lowStockNotified[product.ID] {
				continue
			}
			lowStockNotified[product.ID] = true
			EmitNotification(
				constants.NOTIFY_STOCK,
				"Low stock",
				fmt.Sprintf("Product %q is down to %d units", product.Name, product.Stock),
				utils.Ptr(product.ID),
				utils.StringPtr("product"),
			)
		} else {
			delete(lowStockNotified, product.ID)
		}
	}
}
