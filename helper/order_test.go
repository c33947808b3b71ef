package helper

import (
	"regexp"
	"testing"

	"shop_manager/constants"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, pattern, number)
		assert.False(t, seen[number], "order numbers must not repeat")
		seen[number] = true
	}
}

func TestComputeOrderTotals(t *testing.T) {
	t.Run("free shipping above threshold", func(t *testing.T) {
		items := []model.OrderItem{
			{UnitPrice: 400, Quantity: 3},
		}

		totals := ComputeOrderTotals(items, 0)
		assert.Equal(t, 1200.0, totals.Subtotal)
		assert.Equal(t, 0.0, totals.Shipping)
		assert.Equal(t, 0.0, totals.Tax)
		assert.Equal(t, 1200.0, totals.Total)
	})

	t.Run("flat shipping below threshold", func(t *testing.T) {
		items := []model.OrderItem{
			{UnitPrice: 100, Quantity: 3},
		}

		totals := ComputeOrderTotals(items, 0)
		assert.Equal(t, 300.0, totals.Subtotal)
		assert.Equal(t, 50.0, totals.Shipping)
		assert.Equal(t, 350.0, totals.Total)
	})

	t.Run("discount reduces total", func(t *testing.T) {
		items := []model.OrderItem{
			{UnitPrice: 600, Quantity: 1},
		}

		totals := ComputeOrderTotals(items, 150)
		assert.Equal(t, 600.0, totals.Subtotal)
		assert.Equal(t, 150.0, totals.Discount)
		assert.Equal(t, 0.0, totals.Shipping, "free shipping is decided on the pre-discount subtotal")
		assert.Equal(t, 450.0, totals.Total)
	})

	t.Run("discount clamped to subtotal", func(t *testing.T) {
		items := []model.OrderItem{
			{UnitPrice: 100, Quantity: 1},
		}

		totals := ComputeOrderTotals(items, 500)
		assert.Equal(t, 100.0, totals.Discount)
		assert.Equal(t, 50.0, totals.Shipping)
		assert.Equal(t, 50.0, totals.Total, "total never goes below the shipping fee")
	})

	t.Run("multiple lines rounded", func(t *testing.T) {
		items := []model.OrderItem{
			{UnitPrice: 19.99, Quantity: 3},
			{UnitPrice: 5.49, Quantity: 2},
		}

		totals := ComputeOrderTotals(items, 0)
		assert.Equal(t, 70.95, totals.Subtotal)
		assert.Equal(t, 120.95, totals.Total)
	})
}

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{constants.ORDER_PENDING, constants.ORDER_PROCESSING, true},
		{constants.ORDER_PENDING, constants.ORDER_CANCELLED, true},
		{constants.ORDER_PENDING, constants.ORDER_SHIPPED, false},
		{constants.ORDER_PENDING, constants.ORDER_DELIVERED, false},
		{constants.ORDER_PROCESSING, constants.ORDER_SHIPPED, true},
		{constants.ORDER_PROCESSING, constants.ORDER_CANCELLED, true},
		{constants.ORDER_PROCESSING, constants.ORDER_PENDING, false},
		{constants.ORDER_SHIPPED, constants.ORDER_DELIVERED, true},
		{constants.ORDER_SHIPPED, constants.ORDER_CANCELLED, true},
		{constants.ORDER_SHIPPED, constants.ORDER_PROCESSING, false},
		{constants.ORDER_DELIVERED, constants.ORDER_CANCELLED, false},
		{constants.ORDER_DELIVERED, constants.ORDER_PENDING, false},
		{constants.ORDER_CANCELLED, constants.ORDER_PENDING, false},
		{constants.ORDER_CANCELLED, constants.ORDER_PROCESSING, false},
		{"unknown", constants.ORDER_PENDING, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionOrder(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestInitialPaymentStatus(t *testing.T) {
	assert.Equal(t, constants.PAYMENT_PENDING, InitialPaymentStatus(constants.PAYMENT_METHOD_COD))
	assert.Equal(t, constants.PAYMENT_PAID, InitialPaymentStatus(constants.PAYMENT_METHOD_CARD))
	assert.Equal(t, constants.PAYMENT_PAID, InitialPaymentStatus(constants.PAYMENT_METHOD_UPI))
	assert.Equal(t, constants.PAYMENT_PAID, InitialPaymentStatus(constants.PAYMENT_METHOD_WALLET))
}
