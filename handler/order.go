package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"shop_manager/config"
	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Checkout builds an order from the submitted lines. All money comes
// from current product prices in the database, never from the client.
// Stock decrement and promo redemption happen in one transaction with
// the order insert.
func Checkout(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputCheckout").(model.CheckoutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}

	// Resolve the shipping address: a saved address id wins over the
	// inline fields.
	ship := shippingSnapshot(input)
	if input.AddressId != nil {
		var address model.Address
		if err := db.Where("id = ? AND customer_id = ?", *input.AddressId, customerId).First(&address).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Address does not exist", err, "addressId")
		}
		ship = snapshotFromAddress(address, customer)
	}

	var (
		order model.Order
		promo *model.PromoCode
	)

	if input.PromoCode != "" {
		found, err := helper.FindPromoCodeByCode(input.PromoCode)
		if err != nil {
			if errors.Is(err, helper.ErrPromoNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.PROMO_INVALID_CODE, err, "promoCode")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		promo = found
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		items, err := buildOrderItems(tx, input.Items)
		if err != nil {
			return err
		}

		var subtotal float64
		for _, item := range items {
			subtotal += item.UnitPrice * float64(item.Quantity)
		}
		subtotal = utils.Round2(subtotal)

		var discount float64
		if promo != nil {
			discount, err = helper.EvaluatePromoCode(promo, subtotal, time.Now())
			if err != nil {
				return err
			}
			if err := helper.RedeemPromoCode(tx, promo.ID); err != nil {
				return err
			}
		}

		totals := helper.ComputeOrderTotals(items, discount)

		order = model.Order{
			OrderNumber:   helper.GenerateOrderNumber(),
			CustomerId:    customerId,
			Items:         items,
			Subtotal:      totals.Subtotal,
			Shipping:      totals.Shipping,
			Tax:           totals.Tax,
			Discount:      totals.Discount,
			Total:         totals.Total,
			Status:        constants.ORDER_PENDING,
			PaymentMethod: input.PaymentMethod,
			PaymentStatus: helper.InitialPaymentStatus(input.PaymentMethod),

			ShipName:       ship.ShipName,
			ShipPhone:      ship.ShipPhone,
			ShipLine1:      ship.ShipLine1,
			ShipLine2:      ship.ShipLine2,
			ShipCity:       ship.ShipCity,
			ShipState:      ship.ShipState,
			ShipPostalCode: ship.ShipPostalCode,
		}
		if promo != nil {
			order.PromoCode = utils.StringPtr(promo.Code)
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// The purchased lines leave the cart; unrelated lines stay.
		return removePurchasedCartLines(tx, customerId, items)
	})
	if err != nil {
		var httpErr *checkoutError
		if errors.As(err, &httpErr) {
			return utils.ErrorResponseHaveKey(c, httpErr.status, httpErr.message, err, httpErr.field)
		}
		if isPromoRejection(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "promoCode")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	helper.EmitNotification(
		constants.NOTIFY_ORDER,
		"New order",
		fmt.Sprintf("Order %s placed, total %.2f", order.OrderNumber, order.Total),
		utils.Ptr(order.ID),
		utils.StringPtr("order"),
	)

	if order.PaymentStatus == constants.PAYMENT_PAID {
		helper.EmitNotification(
			constants.NOTIFY_PAYMENT,
			"Payment received",
			fmt.Sprintf("Payment of %.2f received for order %s", order.Total, order.OrderNumber),
			utils.Ptr(order.ID),
			utils.StringPtr("order"),
		)
	}

	sendOrderConfirmation(customer, order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

type checkoutError struct {
	status  int
	message string
	field   string
}

func (e *checkoutError) Error() string { return e.message }

func isPromoRejection(err error) bool {
	var minPurchase *helper.MinPurchaseError
	switch {
	case errors.Is(err, helper.ErrPromoNotActive),
		errors.Is(err, helper.ErrPromoNotStarted),
		errors.Is(err, helper.ErrPromoExpired),
		errors.Is(err, helper.ErrPromoLimitReached),
		errors.As(err, &minPurchase):
		return true
	}
	return false
}

// removePurchasedCartLines clears exactly the purchased variants from
// the cart. Other lines stay, including other size or color variants of
// the same product.
func removePurchasedCartLines(tx *gorm.DB, customerId uint, items []model.OrderItem) error {
	for _, item := range items {
		err := tx.Where("customer_id = ? AND product_id = ? AND size = ? AND color = ?",
			customerId, item.ProductId, item.Size, item.Color).
			Delete(&model.CartItem{}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// buildOrderItems loads each product inside the transaction, checks and
// decrements stock, and snapshots name and unit price into the line.
func buildOrderItems(tx *gorm.DB, inputs []model.CheckoutItemInput) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		var product model.Product
		if err := tx.Where("id = ? AND active = ?", in.ProductId, true).First(&product).Error; err != nil {
			return nil, &checkoutError{fiber.StatusBadRequest, fmt.Sprintf("Product %d is not available", in.ProductId), "items"}
		}

		result := tx.Model(&model.Product{}).
			Where("id = ? AND stock >= ?", in.ProductId, in.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", in.Quantity))
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, &checkoutError{fiber.StatusBadRequest, fmt.Sprintf("Not enough stock for %s", product.Name), "items"}
		}

		items = append(items, model.OrderItem{
			ProductId: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  in.Quantity,
			Size:      in.Size,
			Color:     in.Color,
		})
	}
	return items, nil
}

type shipFields struct {
	ShipName       string
	ShipPhone      string
	ShipLine1      string
	ShipLine2      string
	ShipCity       string
	ShipState      string
	ShipPostalCode string
}

func shippingSnapshot(input model.CheckoutInput) shipFields {
	return shipFields{
		ShipName:       input.ShipName,
		ShipPhone:      input.ShipPhone,
		ShipLine1:      input.ShipLine1,
		ShipLine2:      input.ShipLine2,
		ShipCity:       input.ShipCity,
		ShipState:      input.ShipState,
		ShipPostalCode: input.ShipPostal,
	}
}

func snapshotFromAddress(address model.Address, customer model.Customer) shipFields {
	name := ""
	if customer.FullName != nil {
		name = *customer.FullName
	}
	phone := address.Phone
	if phone == "" {
		phone = customer.Phone
	}
	line2 := ""
	if address.Line2 != nil {
		line2 = *address.Line2
	}
	return shipFields{
		ShipName:       name,
		ShipPhone:      phone,
		ShipLine1:      address.Line1,
		ShipLine2:      line2,
		ShipCity:       address.City,
		ShipState:      address.State,
		ShipPostalCode: address.PostalCode,
	}
}

func sendOrderConfirmation(customer model.Customer, order model.Order) {
	if customer.Email == nil || *customer.Email == "" {
		return
	}

	qrPNG, err := utils.GenerateQRCode(order.OrderNumber, 256)
	if err != nil {
		log.Printf("failed to render QR for order %s: %v", order.OrderNumber, err)
	}

	var lines []string
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
	}

	name := ""
	if customer.FullName != nil {
		name = *customer.FullName
	}

	utils.SendOrderConfirmationEmail(*customer.Email, qrPNG, utils.OrderConfirmationData{
		OrderNumber:   order.OrderNumber,
		CustomerName:  name,
		Items:         strings.Join(lines, ", "),
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Tax:           order.Tax,
		Discount:      order.Discount,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		DetailLink:    config.Config("FRONTEND_URL") + "/orders/" + order.OrderNumber,
	})
}

// GetMyOrders lists the logged-in customer's orders, newest first.
func GetMyOrders(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var orders model.Orders
	err := database.DB.Preload("Items").
		Where("customer_id = ?", customerId).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

// GetMyOrderDetail returns one of the customer's orders by its public
// order number, with a QR for pickup or support lookups.
func GetMyOrderDetail(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	orderNumber := c.Params("orderNumber")

	var order model.Order
	err := database.DB.Preload("Items").
		Where("order_number = ? AND customer_id = ?", orderNumber, customerId).
		First(&order).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	qrPNG, err := utils.GenerateQRCode(order.OrderNumber, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":  order,
		"qrCode": "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// CancelMyOrder lets the customer cancel their own order while it has
// not shipped. Stock goes back.
func CancelMyOrder(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	orderNumber := c.Params("orderNumber")
	db := database.DB

	var order model.Order
	err := db.Preload("Items").
		Where("order_number = ? AND customer_id = ?", orderNumber, customerId).
		First(&order).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if order.Status != constants.ORDER_PENDING && order.Status != constants.ORDER_PROCESSING {
		return utils.ErrorResponse(c, fiber.StatusConflict,
			fmt.Sprintf("Order in status %s can no longer be cancelled", order.Status), nil)
	}

	if err := cancelOrder(db, &order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func cancelOrder(db *gorm.DB, order *model.Order) error {
	return db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		order.Status = constants.ORDER_CANCELLED
		order.CancelledAt = &now

		if err := tx.Save(order).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			if err := tx.Model(&model.Product{}).
				Where("id = ?", item.ProductId).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetOrders is the back-office order list.
func GetOrders(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterOrder
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	query := db.Model(&model.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SearchKey != "" {
		query = query.Where("order_number ILIKE ? OR ship_name ILIKE ? OR ship_phone ILIKE ?",
			"%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}

	var totalCount int64
	query.Count(&totalCount)

	var orders model.Orders
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Preload("Items").Preload("Customer").Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)

	var order model.Order
	err := database.DB.Preload("Items").Preload("Customer").First(&order, orderId).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus moves an order along its lifecycle. Rejected when
// the transition table does not allow the move. Delivery stamps the
// time, settles cash-on-delivery payment and notifies exactly once;
// cancellation restocks.
func UpdateOrderStatus(c *fiber.Ctx) error {
	db := database.DB

	orderId := c.Locals("inputOrderId").(uint)
	input, ok := c.Locals("inputUpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var order model.Order
	if err := db.Preload("Items").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !helper.CanTransitionOrder(order.Status, input.Status) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict,
			fmt.Sprintf("Cannot move order from %s to %s", order.Status, input.Status), nil, "status")
	}

	if input.Status == constants.ORDER_CANCELLED {
		if err := cancelOrder(db, &order); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, order)
	}

	order.Status = input.Status
	if input.TrackingNumber != nil {
		order.TrackingNumber = input.TrackingNumber
	}

	delivered := input.Status == constants.ORDER_DELIVERED
	if delivered {
		now := time.Now()
		order.DeliveredAt = &now
		if order.PaymentMethod == constants.PAYMENT_METHOD_COD && order.PaymentStatus == constants.PAYMENT_PENDING {
			order.PaymentStatus = constants.PAYMENT_PAID
		}
	}

	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if delivered {
		helper.EmitNotification(
			constants.NOTIFY_DELIVERY,
			"Order delivered",
			fmt.Sprintf("Order %s was delivered", order.OrderNumber),
			utils.Ptr(order.ID),
			utils.StringPtr("order"),
		)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
