package helper

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/redis/go-redis/v9"
)

const NotificationChannel = "notifications"

var RedisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// EmitNotification records an admin-facing event and fans it out to
// connected dashboards. Best-effort: a failed insert or publish is
// logged and swallowed, it must never fail the triggering operation.
func EmitNotification(notifyType, title, message string, relatedId *uint, relatedType *string) {
	notification := model.Notification{
		Type:        notifyType,
		Title:       title,
		Message:     message,
		RelatedId:   relatedId,
		RelatedType: relatedType,
		Unread:      true,
	}

	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("failed to create %s notification: %v", notifyType, err)
		return
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		log.Printf("failed to marshal notification %d: %v", notification.ID, err)
		return
	}
	if err := RedisClient.Publish(context.Background(), NotificationChannel, payload).Err(); err != nil {
		log.Printf("failed to publish notification %d: %v", notification.ID, err)
	}
}
