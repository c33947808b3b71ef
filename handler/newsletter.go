package handler

import (
	"errors"
	"log"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubscribeNewsletter registers an email. Subscribing an address that
// previously unsubscribed re-activates it.
func SubscribeNewsletter(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputSubscribe").(model.SubscribeNewsletterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var subscriber model.NewsletterSubscriber
	err := db.Where("LOWER(email) = LOWER(?)", input.Email).First(&subscriber).Error
	switch {
	case err == nil:
		if !subscriber.Subscribed {
			subscriber.Subscribed = true
			if err := db.Save(&subscriber).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		subscriber = model.NewsletterSubscriber{Email: input.Email, Subscribed: true}
		if err := db.Create(&subscriber).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Subscribed"})
}

func UnsubscribeNewsletter(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputSubscribe").(model.SubscribeNewsletterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	err := db.Model(&model.NewsletterSubscriber{}).
		Where("LOWER(email) = LOWER(?)", input.Email).
		Update("subscribed", false).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Unsubscribed"})
}

func GetNewsletterSubscribers(c *fiber.Ctx) error {
	var subscribers []model.NewsletterSubscriber
	err := database.DB.Order("created_at desc").Find(&subscribers).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, subscribers)
}

// BroadcastNewsletter queues one mail per active subscriber. Sending
// runs in the background; individual failures are logged and do not
// stop the rest of the batch.
func BroadcastNewsletter(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputBroadcast").(model.BroadcastNewsletterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var subscribers []model.NewsletterSubscriber
	if err := db.Where("subscribed = ?", true).Find(&subscribers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	go func(subject, body string, recipients []model.NewsletterSubscriber) {
		for _, subscriber := range recipients {
			if err := utils.SendNewsletterEmail(subscriber.Email, subject, body); err != nil {
				log.Printf("newsletter send to %s failed: %v", subscriber.Email, err)
			}
		}
	}(input.Subject, input.Body, subscribers)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":    "Broadcast started",
		"recipients": len(subscribers),
	})
}
