package handler

import (
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func currentCustomerId(c *fiber.Ctx) (uint, bool) {
	customerId, ok := c.Locals("customerId").(uint)
	return customerId, ok && customerId != 0
}

// GetCart returns the customer's cart lines with per-line and cart
// totals computed from current product prices.
func GetCart(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB
	var items []model.CartItem
	err := db.Preload("Product").Preload("Product.Images").
		Where("customer_id = ?", customerId).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	type cartLine struct {
		model.CartItem
		LineTotal float64 `json:"lineTotal"`
	}

	lines := make([]cartLine, 0, len(items))
	var subtotal float64
	for _, item := range items {
		lineTotal := utils.Round2(item.Product.Price * float64(item.Quantity))
		subtotal += lineTotal
		lines = append(lines, cartLine{CartItem: item, LineTotal: lineTotal})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items":    lines,
		"subtotal": utils.Round2(subtotal),
	})
}

// AddCartItem adds a line or merges the quantity into an existing line
// with the same product, size and color.
func AddCartItem(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputAddCartItem").(model.AddCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var product model.Product
	if err := db.Where("id = ? AND active = ?", input.ProductId, true).First(&product).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err, "productId")
	}
	if product.Stock < input.Quantity {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Not enough stock", nil, "quantity")
	}

	var item model.CartItem
	err := db.Where("customer_id = ? AND product_id = ? AND size = ? AND color = ?",
		customerId, input.ProductId, input.Size, input.Color).
		First(&item).Error
	switch {
	case err == nil:
		item.Quantity += input.Quantity
		if product.Stock < item.Quantity {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Not enough stock", nil, "quantity")
		}
		if err := db.Save(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = model.CartItem{
			CustomerId: customerId,
			ProductId:  input.ProductId,
			Quantity:   input.Quantity,
			Size:       input.Size,
			Color:      input.Color,
		}
		if err := db.Create(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Product").First(&item, item.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func UpdateCartItem(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	itemId := c.Locals("inputCartItemId").(uint)
	input, ok := c.Locals("inputUpdateCartItem").(model.UpdateCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var item model.CartItem
	if err := db.Preload("Product").Where("id = ? AND customer_id = ?", itemId, customerId).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if item.Product.Stock < input.Quantity {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Not enough stock", nil, "quantity")
	}

	item.Quantity = input.Quantity
	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func RemoveCartItem(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	itemId := c.Locals("inputId").(int)

	result := database.DB.Where("id = ? AND customer_id = ?", itemId, customerId).Delete(&model.CartItem{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Item removed"})
}

func ClearCart(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	if err := database.DB.Where("customer_id = ?", customerId).Delete(&model.CartItem{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Cart cleared"})
}
