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

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if len(input.Items) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Order must contain at least one item",
				"field": "items",
			})
		}
		if !utils.IsValidValueOfConstant(input.PaymentMethod, constants.PaymentMethods) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid payment method",
				"field": "paymentMethod",
			})
		}
		// Either a saved address id or a full inline address is required.
		if input.AddressId == nil {
			if input.ShipLine1 == "" || input.ShipCity == "" || input.ShipPostal == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Shipping address is incomplete",
					"field": "shippingAddress",
				})
			}
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCheckout", input)

		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateOrderStatusInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if !utils.IsValidValueOfConstant(input.Status, constants.OrderStatuses) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid order status",
				"field": "status",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputUpdateOrderStatus", input)
		c.Locals("inputOrderId", uint(valueKey))

		return c.Next()
	}
}
