package helper

import (
	"errors"
	"fmt"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"
	"shop_manager/utils"

	"gorm.io/gorm"
)

// Promo code rejection reasons, in validation order. The first failing
// check wins and later checks are not evaluated.
var (
	ErrPromoNotFound     = errors.New(constants.PROMO_INVALID_CODE)
	ErrPromoNotActive    = errors.New(constants.PROMO_NOT_ACTIVE)
	ErrPromoNotStarted   = errors.New(constants.PROMO_NOT_STARTED)
	ErrPromoExpired      = errors.New(constants.PROMO_EXPIRED)
	ErrPromoLimitReached = errors.New(constants.PROMO_LIMIT_REACHED)
)

// MinPurchaseError rejects a cart whose subtotal is below the code's
// minimum purchase amount. Carries the minimum so callers can match it
// with errors.As.
type MinPurchaseError struct {
	Minimum float64
}

func (e *MinPurchaseError) Error() string {
	return fmt.Sprintf("minimum purchase of %.2f required for this code", e.Minimum)
}

// FindPromoCodeByCode looks a code up case-insensitively.
func FindPromoCodeByCode(code string) (*model.PromoCode, error) {
	db := database.DB
	var promo model.PromoCode
	if err := db.Where("LOWER(code) = LOWER(?)", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	return &promo, nil
}

// EvaluatePromoCode decides whether the promo applies to a cart subtotal
// and computes the discount. Read-only: redemption counting happens in
// RedeemPromoCode at checkout.
func EvaluatePromoCode(promo *model.PromoCode, cartTotal float64, now time.Time) (float64, error) {
	if !promo.Active {
		return 0, ErrPromoNotActive
	}
	if now.Before(promo.StartDate) {
		return 0, ErrPromoNotStarted
	}
	if now.After(promo.EndDate) {
		return 0, ErrPromoExpired
	}
	if promo.UsageLimit > 0 && promo.UsedCount >= promo.UsageLimit {
		return 0, ErrPromoLimitReached
	}
	if cartTotal < promo.MinPurchaseAmount {
		return 0, &MinPurchaseError{Minimum: promo.MinPurchaseAmount}
	}

	var discount float64
	switch promo.DiscountType {
	case constants.DISCOUNT_PERCENTAGE:
		discount = cartTotal * promo.DiscountValue / 100
		if promo.MaxDiscountAmount > 0 && discount > promo.MaxDiscountAmount {
			discount = promo.MaxDiscountAmount
		}
	case constants.DISCOUNT_FIXED:
		discount = promo.DiscountValue
	default:
		return 0, fmt.Errorf("unknown discount type %q", promo.DiscountType)
	}

	if discount > cartTotal {
		discount = cartTotal
	}

	return utils.Round2(discount), nil
}

// RedeemPromoCode increments used_count, but only while the usage limit
// has not been reached. The conditional UPDATE makes the check-and-
// increment atomic, so concurrent checkouts near the limit cannot
// over-redeem. Zero rows affected means the limit was hit in between.
func RedeemPromoCode(tx *gorm.DB, promoId uint) error {
	result := tx.Model(&model.PromoCode{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", promoId).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromoLimitReached
	}
	return nil
}
