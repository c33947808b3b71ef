package helper

import (
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"

	"gorm.io/gorm"
)

var (
	ErrAlreadyReviewed = errors.New(constants.REVIEW_ALREADY_EXISTS)
	ErrNotPurchased    = errors.New(constants.REVIEW_NOT_PURCHASED)
)

// ReviewEligibility is the outcome of the eligibility check. When the
// customer already reviewed the product, Existing carries that review;
// when eligible, Order is the first delivered order containing the
// product, which the review will be bound to.
type ReviewEligibility struct {
	Existing *model.Review
	Order    *model.Order
}

// CheckReviewEligibility decides whether a customer may review a product:
// not yet reviewed, and the product appears in one of their delivered
// orders.
func CheckReviewEligibility(customerId, productId uint) (*ReviewEligibility, error) {
	db := database.DB

	var existing model.Review
	err := db.Where("product_id = ? AND customer_id = ?", productId, customerId).First(&existing).Error
	if err == nil {
		return &ReviewEligibility{Existing: &existing}, ErrAlreadyReviewed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	order, err := FindQualifyingOrder(customerId, productId)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotPurchased
	}

	return &ReviewEligibility{Order: order}, nil
}

// FindQualifyingOrder returns the customer's oldest delivered order that
// contains the product, or nil when none exists.
func FindQualifyingOrder(customerId, productId uint) (*model.Order, error) {
	db := database.DB
	var order model.Order
	err := db.
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.customer_id = ? AND orders.status = ? AND order_items.product_id = ?",
			customerId, constants.ORDER_DELIVERED, productId).
		Order("orders.created_at asc").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// OrderContainsProduct checks that the given order belongs to the
// customer and includes the product as a line item. Used to re-validate
// the binding order on review submission.
func OrderContainsProduct(orderId, customerId, productId uint) (bool, error) {
	db := database.DB
	var count int64
	err := db.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.order_id = ? AND orders.customer_id = ? AND order_items.product_id = ?",
			orderId, customerId, productId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
