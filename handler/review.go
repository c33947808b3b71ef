package handler

import (
	"errors"
	"strings"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetReviewEligibility tells the storefront whether the review form
// should be shown for a product, and which order the review would bind
// to.
func GetReviewEligibility(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	productId := c.Locals("inputId").(int)

	eligibility, err := helper.CheckReviewEligibility(customerId, uint(productId))
	payload, ok := eligibilityPayload(eligibility, err)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payload)
}

// eligibilityPayload maps an eligibility check to the storefront
// response. The second return is false for errors that are not an
// eligibility verdict.
func eligibilityPayload(eligibility *helper.ReviewEligibility, err error) (fiber.Map, bool) {
	switch {
	case err == nil:
		return fiber.Map{
			"eligible": true,
			"orderId":  eligibility.Order.ID,
		}, true
	case errors.Is(err, helper.ErrAlreadyReviewed):
		return fiber.Map{
			"eligible": false,
			"reason":   constants.REVIEW_ALREADY_EXISTS,
			"review":   eligibility.Existing,
		}, true
	case errors.Is(err, helper.ErrNotPurchased):
		return fiber.Map{
			"eligible": false,
			"reason":   constants.REVIEW_NOT_PURCHASED,
		}, true
	}
	return nil, false
}

// CreateReview submits a review. Eligibility is re-checked here since
// the form could be stale; the unique index on (product, customer) is
// the backstop against a racing double submit.
func CreateReview(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputCreateReview").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	_, err := helper.CheckReviewEligibility(customerId, input.ProductId)
	if err != nil {
		if errors.Is(err, helper.ErrAlreadyReviewed) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.REVIEW_ALREADY_EXISTS, err)
		}
		if errors.Is(err, helper.ErrNotPurchased) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.REVIEW_NOT_PURCHASED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	validOrder, err := helper.OrderContainsProduct(input.OrderId, customerId, input.ProductId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !validOrder {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Order does not contain this product", nil, "orderId")
	}

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}

	customerName := customer.Phone
	if customer.FullName != nil && *customer.FullName != "" {
		customerName = *customer.FullName
	}

	review := model.Review{
		ProductId:    input.ProductId,
		CustomerId:   customerId,
		CustomerName: customerName,
		OrderId:      input.OrderId,
		Rating:       input.Rating,
		Title:        input.Title,
		Comment:      input.Comment,
		Verified:     true,
	}

	if err := db.Create(&review).Error; err != nil {
		if strings.Contains(err.Error(), "idx_reviews_product_customer") {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.REVIEW_ALREADY_EXISTS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, review)
}

func GetProductReviews(c *fiber.Ctx) error {
	productId := c.Locals("inputId").(int)

	var reviews model.Reviews
	err := database.DB.Where("product_id = ?", productId).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var avgRating float64
	database.DB.Model(&model.Review{}).
		Where("product_id = ?", productId).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avgRating)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reviews":       reviews,
		"averageRating": utils.Round2(avgRating),
	})
}

// DeleteReviews removes reviews, for moderation.
func DeleteReviews(c *fiber.Ctx) error {
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := database.DB.Where("id IN ?", deleteIds.IDs).Delete(&model.Review{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Reviews deleted"})
}
