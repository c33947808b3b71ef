package validate

import (
	"fmt"
	"strings"

	"shop_manager/model"

	"github.com/gofiber/fiber/v2"
)

// isValidPhone accepts a 10-digit local number or +<country code> with
// 11-13 digits total.
func isValidPhone(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if strings.HasPrefix(phone, "+") {
		digits := phone[1:]
		if len(digits) < 11 || len(digits) > 13 {
			return false
		}
		for _, r := range digits {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func SendOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SendOtpInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if input.Phone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Phone number must not be empty",
				"field": "phone",
			})
		}
		if !isValidPhone(input.Phone) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid phone number",
				"field": "phone",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("SendOtp", input)

		return c.Next()
	}
}

func VerifyOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.VerifyOtpInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if !isValidPhone(input.Phone) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid phone number",
				"field": "phone",
			})
		}
		if len(input.Otp) != 6 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Login code must be 6 digits",
				"field": "otp",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("VerifyOtp", input)

		return c.Next()
	}
}

func EditCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCustomerInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputEditCustomer", input)

		return c.Next()
	}
}

func CreateAddress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAddressInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if input.Phone != "" && !isValidPhone(input.Phone) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid phone number",
				"field": "phone",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputAddress", input)

		return c.Next()
	}
}
