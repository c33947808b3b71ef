package helper

import (
	"strings"
	"time"

	"shop_manager/config"
	"shop_manager/constants"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/google/uuid"
)

// GenerateOrderNumber returns a collision-resistant public order number,
// e.g. ORD-20250114-9F86D081.
func GenerateOrderNumber() string {
	id := strings.ToUpper(uuid.New().String()[:8])
	return "ORD-" + time.Now().Format("20060102") + "-" + id
}

// OrderTotals is the server-side money breakdown of an order. Client
// submitted totals are never trusted; everything is recomputed here from
// authoritative product prices.
type OrderTotals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Discount float64
	Total    float64
}

// ComputeOrderTotals derives subtotal/shipping/tax/total from the order
// lines and an already-evaluated discount. Shipping is a flat fee waived
// above the free-shipping threshold; tax applies to the discounted
// subtotal.
func ComputeOrderTotals(items []model.OrderItem, discount float64) OrderTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	subtotal = utils.Round2(subtotal)

	if discount > subtotal {
		discount = subtotal
	}
	discount = utils.Round2(discount)

	shipping := 0.0
	freeShippingMin := config.ConfigFloat("FREE_SHIPPING_MIN", 500)
	if subtotal < freeShippingMin {
		shipping = config.ConfigFloat("SHIPPING_FEE", 50)
	}

	taxRate := config.ConfigFloat("TAX_RATE", 0)
	tax := utils.Round2((subtotal - discount) * taxRate)

	total := utils.Round2(subtotal + shipping + tax - discount)

	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		Total:    total,
	}
}

// orderTransitions is the allowed-transition table. Progression is
// forward-only; cancelled is reachable from any non-terminal state;
// delivered and cancelled are terminal.
var orderTransitions = map[string][]string{
	constants.ORDER_PENDING:    {constants.ORDER_PROCESSING, constants.ORDER_CANCELLED},
	constants.ORDER_PROCESSING: {constants.ORDER_SHIPPED, constants.ORDER_CANCELLED},
	constants.ORDER_SHIPPED:    {constants.ORDER_DELIVERED, constants.ORDER_CANCELLED},
	constants.ORDER_DELIVERED:  {},
	constants.ORDER_CANCELLED:  {},
}

// CanTransitionOrder reports whether an order may move between the two
// statuses.
func CanTransitionOrder(from, to string) bool {
	allowed, ok := orderTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// InitialPaymentStatus maps the payment method to the payment status an
// order starts in. Cash on delivery stays pending until delivery.
func InitialPaymentStatus(paymentMethod string) string {
	if paymentMethod == constants.PAYMENT_METHOD_COD {
		return constants.PAYMENT_PENDING
	}
	return constants.PAYMENT_PAID
}
