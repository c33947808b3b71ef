package main

import (
	"log"

	"shop_manager/config"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartPromoExpiryScheduler()
	defer helper.StopPromoExpiryScheduler()
	helper.StartLowStockScheduler()
	defer helper.StopLowStockScheduler()

	router.SetupRoutes(app)

	port := config.ConfigOr("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
