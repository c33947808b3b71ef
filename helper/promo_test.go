package helper

import (
	"testing"
	"time"

	"shop_manager/constants"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
)

func activePromo() *model.PromoCode {
	return &model.PromoCode{
		Code:          "SAVE20",
		Active:        true,
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		DiscountType:  constants.DISCOUNT_PERCENTAGE,
		DiscountValue: 20,
	}
}

func TestEvaluatePromoCodePercentageWithCap(t *testing.T) {
	promo := activePromo()
	promo.MaxDiscountAmount = 150

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, err := EvaluatePromoCode(promo, 1000, now)
	assert.NoError(t, err)
	assert.Equal(t, 150.0, discount, "20 percent of 1000 is 200, capped at 150")

	discount, err = EvaluatePromoCode(promo, 500, now)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, discount, "20 percent of 500 stays under the cap")
}

func TestEvaluatePromoCodeFixedClampedToCart(t *testing.T) {
	promo := activePromo()
	promo.Code = "FLAT100"
	promo.DiscountType = constants.DISCOUNT_FIXED
	promo.DiscountValue = 100

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, err := EvaluatePromoCode(promo, 50, now)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, discount, "fixed discount never exceeds the cart total")

	discount, err = EvaluatePromoCode(promo, 400, now)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, discount)
}

func TestEvaluatePromoCodeRejections(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("inactive", func(t *testing.T) {
		promo := activePromo()
		promo.Active = false

		_, err := EvaluatePromoCode(promo, 1000, now)
		assert.ErrorIs(t, err, ErrPromoNotActive)
	})

	t.Run("inactive wins over expired", func(t *testing.T) {
		promo := activePromo()
		promo.Active = false
		promo.EndDate = now.AddDate(0, -1, 0)

		_, err := EvaluatePromoCode(promo, 1000, now)
		assert.ErrorIs(t, err, ErrPromoNotActive, "checks run in order, first failure wins")
	})

	t.Run("not started", func(t *testing.T) {
		promo := activePromo()
		promo.StartDate = now.AddDate(0, 1, 0)

		_, err := EvaluatePromoCode(promo, 1000, now)
		assert.ErrorIs(t, err, ErrPromoNotStarted)
	})

	t.Run("expired", func(t *testing.T) {
		promo := activePromo()
		promo.EndDate = now.AddDate(0, -1, 0)

		_, err := EvaluatePromoCode(promo, 1000, now)
		assert.ErrorIs(t, err, ErrPromoExpired)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		promo := activePromo()
		promo.UsageLimit = 5
		promo.UsedCount = 5

		_, err := EvaluatePromoCode(promo, 1000, now)
		assert.ErrorIs(t, err, ErrPromoLimitReached)
	})

	t.Run("zero usage limit means unlimited", func(t *testing.T) {
		promo := activePromo()
		promo.UsageLimit = 0
		promo.UsedCount = 99999

		_, err := EvaluatePromoCode(promo, 1000, now)
		assert.NoError(t, err)
	})

	t.Run("minimum purchase", func(t *testing.T) {
		promo := activePromo()
		promo.MinPurchaseAmount = 500

		_, err := EvaluatePromoCode(promo, 499.99, now)
		var minErr *MinPurchaseError
		assert.ErrorAs(t, err, &minErr)
		assert.Equal(t, 500.0, minErr.Minimum)
		assert.Contains(t, err.Error(), "minimum purchase of 500.00")

		_, err = EvaluatePromoCode(promo, 500, now)
		assert.NoError(t, err, "exactly the minimum qualifies")
	})
}

func TestEvaluatePromoCodeRounding(t *testing.T) {
	promo := activePromo()
	promo.DiscountValue = 10

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, err := EvaluatePromoCode(promo, 99.99, now)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, discount, "9.999 rounds to 10.00")

	discount, err = EvaluatePromoCode(promo, 33.33, now)
	assert.NoError(t, err)
	assert.Equal(t, 3.33, discount)
}

func TestEvaluatePromoCodeBoundaryDates(t *testing.T) {
	promo := activePromo()

	_, err := EvaluatePromoCode(promo, 1000, promo.StartDate)
	assert.NoError(t, err, "valid exactly at start")

	_, err = EvaluatePromoCode(promo, 1000, promo.EndDate)
	assert.NoError(t, err, "valid exactly at end")
}
