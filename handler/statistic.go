package handler

import (
	"errors"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats is the back-office dashboard payload: headline counts,
// today vs yesterday revenue with growth, order status breakdown, top
// selling products and the latest orders.
func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	var totalCustomers, totalProducts, totalOrders int64
	db.Model(&model.Customer{}).Count(&totalCustomers)
	db.Model(&model.Product{}).Where("active = ?", true).Count(&totalProducts)
	db.Model(&model.Order{}).Count(&totalOrders)

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var todayRevenue, yesterdayRevenue float64
	db.Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= ? AND status != ?
	`, todayStart, constants.ORDER_CANCELLED).Scan(&todayRevenue)
	db.Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= ? AND created_at < ? AND status != ?
	`, yesterdayStart, todayStart, constants.ORDER_CANCELLED).Scan(&yesterdayRevenue)

	var todayOrders, yesterdayOrders int64
	db.Model(&model.Order{}).Where("created_at >= ?", todayStart).Count(&todayOrders)
	db.Model(&model.Order{}).Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).Count(&yesterdayOrders)

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var statusBreakdown []statusCount
	db.Raw(`
		SELECT status, COUNT(*) AS count
		FROM orders
		GROUP BY status
	`).Scan(&statusBreakdown)

	type topProduct struct {
		ProductId uint    `json:"productId"`
		Name      string  `json:"name"`
		Sold      int64   `json:"sold"`
		Revenue   float64 `json:"revenue"`
	}
	var topProducts []topProduct
	db.Raw(`
		SELECT
			order_items.product_id AS product_id,
			order_items.name AS name,
			COALESCE(SUM(order_items.quantity), 0) AS sold,
			COALESCE(SUM(order_items.unit_price * order_items.quantity), 0) AS revenue
		FROM order_items
		JOIN orders ON orders.id = order_items.order_id
		WHERE orders.status != ?
		GROUP BY order_items.product_id, order_items.name
		ORDER BY sold DESC
		LIMIT 5
	`, constants.ORDER_CANCELLED).Scan(&topProducts)

	var recentOrders model.Orders
	db.Preload("Items").Order("created_at desc").Limit(10).Find(&recentOrders)

	var lowStockCount int64
	db.Model(&model.Product{}).
		Where("active = ? AND stock <= low_stock_threshold", true).
		Count(&lowStockCount)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totals": fiber.Map{
			"customers": totalCustomers,
			"products":  totalProducts,
			"orders":    totalOrders,
		},
		"revenue": fiber.Map{
			"today":     utils.Round2(todayRevenue),
			"yesterday": utils.Round2(yesterdayRevenue),
			"growth":    utils.Round2(utils.CalculateGrowth(todayRevenue, yesterdayRevenue)),
		},
		"orders": fiber.Map{
			"today":     todayOrders,
			"yesterday": yesterdayOrders,
			"growth":    utils.Round2(utils.CalculateGrowth(float64(todayOrders), float64(yesterdayOrders))),
		},
		"statusBreakdown": statusBreakdown,
		"topProducts":     topProducts,
		"recentOrders":    recentOrders,
		"lowStockCount":   lowStockCount,
	})
}

// GetRevenueByDay returns daily revenue for the last N days (default
// 30) for the dashboard chart.
func GetRevenueByDay(c *fiber.Ctx) error {
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	type dayRevenue struct {
		Day     time.Time `json:"day"`
		Revenue float64   `json:"revenue"`
		Orders  int64     `json:"orders"`
	}
	var rows []dayRevenue
	database.DB.Raw(`
		SELECT
			DATE_TRUNC('day', created_at) AS day,
			COALESCE(SUM(total), 0) AS revenue,
			COUNT(*) AS orders
		FROM orders
		WHERE created_at >= ? AND status != ?
		GROUP BY day
		ORDER BY day
	`, time.Now().AddDate(0, 0, -days), constants.ORDER_CANCELLED).Scan(&rows)

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
