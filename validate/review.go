package validate

import (
	"fmt"

	"shop_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReviewInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if input.Rating < 1 || input.Rating > 5 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Rating must be between 1 and 5",
				"field": "rating",
			})
		}
		if len(input.Title) < 3 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Title must be at least 3 characters",
				"field": "title",
			})
		}
		if len(input.Comment) < 10 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Comment must be at least 10 characters",
				"field": "comment",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreateReview", input)

		return c.Next()
	}
}
