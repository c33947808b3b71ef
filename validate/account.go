package validate

import (
	"errors"
	"fmt"

	"shop_manager/constants"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if input.Role != "" && !utils.IsValidValueOfConstant(input.Role, []string{constants.ROLE_ADMIN, constants.ROLE_MANAGER}) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid role",
				"field": "role",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreateAccount", input)

		return c.Next()
	}
}

func AdminChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminChangePassword

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if input.NewPassword != input.RepeatPassword {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Password confirmation does not match", errors.New("repeatPassword invalid"), "repeatPassword")
		}
		if len(input.NewPassword) < 6 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Password must be at least 6 characters", errors.New("newPassword invalid"), "newPassword")
		}

		c.Locals("inputAdminChangePassword", input)

		return c.Next()
	}
}
