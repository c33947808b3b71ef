package handler

import (
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetNotifications(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterNotification
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	query := db.Model(&model.Notification{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Unread != nil {
		query = query.Where("unread = ?", *filter.Unread)
	}

	var totalCount int64
	query.Count(&totalCount)

	var notifications model.Notifications
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("created_at desc").Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       notifications,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetUnreadNotificationCount(c *fiber.Ctx) error {
	var count int64
	err := database.DB.Model(&model.Notification{}).Where("unread = ?", true).Count(&count).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"unreadCount": count})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	notificationId := c.Locals("inputId").(int)

	result := database.DB.Model(&model.Notification{}).
		Where("id = ?", notificationId).
		Update("unread", false)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("notification not exists"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Notification marked read"})
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	err := database.DB.Model(&model.Notification{}).
		Where("unread = ?", true).
		Update("unread", false).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "All notifications marked read"})
}
