package handler

import (
	"errors"
	"strings"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPromoCodes(c *fiber.Ctx) error {
	db := database.DB

	var promoCodes model.PromoCodes
	if err := db.Order("created_at desc").Find(&promoCodes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promoCodes)
}

// CreatePromoCode registers a new code. Codes are stored uppercase and
// matched case-insensitively.
func CreatePromoCode(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreatePromoCode").(model.CreatePromoCodeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))

	var count int64
	db.Model(&model.PromoCode{}).Where("LOWER(code) = LOWER(?)", code).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.PROMO_DUPLICATE_CODE, nil, "code")
	}

	promo := model.PromoCode{
		Code:              code,
		Description:       input.Description,
		Active:            true,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		DiscountType:      input.DiscountType,
		DiscountValue:     input.DiscountValue,
		MaxDiscountAmount: input.MaxDiscountAmount,
		MinPurchaseAmount: input.MinPurchaseAmount,
		UsageLimit:        input.UsageLimit,
	}

	if err := db.Create(&promo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promo)
}

// EditPromoCode updates a code's terms. The code string itself is
// immutable; orders already reference it by value.
func EditPromoCode(c *fiber.Ctx) error {
	db := database.DB

	promoId := c.Locals("inputPromoCodeId").(uint)
	input, ok := c.Locals("inputEditPromoCode").(model.EditPromoCodeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var promo model.PromoCode
	if err := db.First(&promo, promoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	copier.CopyWithOption(&promo, &input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		promo.Active = *input.Active
	}

	if promo.EndDate.Before(promo.StartDate) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "End date must be after start date", nil, "endDate")
	}

	if err := db.Save(&promo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promo)
}

func DeletePromoCodes(c *fiber.Ctx) error {
	db := database.DB

	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := db.Model(&model.PromoCode{}).Where("id IN ?", deleteIds.IDs).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Promo codes deactivated"})
}

// ApplyPromoCode previews a code against a cart subtotal without
// consuming a redemption.
func ApplyPromoCode(c *fiber.Ctx) error {
	input, ok := c.Locals("inputApplyPromoCode").(model.ApplyPromoCodeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	promo, err := helper.FindPromoCodeByCode(input.Code)
	if err != nil {
		if errors.Is(err, helper.ErrPromoNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.PROMO_INVALID_CODE, err, "code")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	discount, err := helper.EvaluatePromoCode(promo, input.CartTotal, time.Now())
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "code")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"code":     promo.Code,
		"discount": discount,
		"total":    utils.Round2(input.CartTotal - discount),
	})
}
