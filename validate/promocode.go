package validate

import (
	"errors"
	"fmt"
	"strconv"

	"shop_manager/constants"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePromoCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePromoCodeInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if !utils.IsValidValueOfConstant(input.DiscountType, constants.DiscountTypes) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Discount type must be percentage or fixed",
				"field": "discountType",
			})
		}
		if input.DiscountType == constants.DISCOUNT_PERCENTAGE && input.DiscountValue > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Percentage discount cannot exceed 100",
				"field": "discountValue",
			})
		}
		if !input.EndDate.After(input.StartDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "End date must be after start date",
				"field": "endDate",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreatePromoCode", input)

		return c.Next()
	}
}

func EditPromoCode(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditPromoCodeInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if input.StartDate != nil && input.EndDate != nil && !input.EndDate.After(*input.StartDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "End date must be after start date",
				"field": "endDate",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputEditPromoCode", input)
		c.Locals("inputPromoCodeId", uint(valueKey))

		return c.Next()
	}
}

func ApplyPromoCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ApplyPromoCodeInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if input.Code == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Promo code must not be empty",
				"field": "code",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputApplyPromoCode", input)

		return c.Next()
	}
}
