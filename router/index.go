package router

import (
	"shop_manager/handler"
	"shop_manager/middleware"
	"shop_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerById)

	category := v1.Group("/category", logger.New())
	category.Post("/", middleware.Protected(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), handler.EditCategory)

	product := v1.Group("/product", logger.New())
	product.Get("/", middleware.Protected(), handler.GetAdminProducts)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.EditProduct("productId"), handler.EditProduct)
	product.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProducts)
	product.Post("/:productId/image", middleware.Protected(), validate.GetById("productId"), handler.UploadProductImage)
	product.Delete("/image/:imageId", middleware.Protected(), validate.GetById("imageId"), handler.DeleteProductImage)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	order.Patch("/:orderId/status", middleware.Protected(), validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)

	promo := v1.Group("/promo-code", logger.New())
	promo.Get("/", middleware.Protected(), handler.GetPromoCodes)
	promo.Post("/", middleware.Protected(), validate.CreatePromoCode(), handler.CreatePromoCode)
	promo.Put("/:promoCodeId", middleware.Protected(), validate.EditPromoCode("promoCodeId"), handler.EditPromoCode)
	promo.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePromoCodes)

	review := v1.Group("/review", logger.New())
	review.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteReviews)

	notification := v1.Group("/notification", logger.New())
	notification.Get("/", middleware.Protected(), handler.GetNotifications)
	notification.Get("/unread-count", middleware.Protected(), handler.GetUnreadNotificationCount)
	notification.Patch("/read-all", middleware.Protected(), handler.MarkAllNotificationsRead)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)
	notification.Get("/ws", middleware.Protected(), websocket.New(handler.NotificationWebsocket))

	newsletter := v1.Group("/newsletter", logger.New())
	newsletter.Get("/subscribers", middleware.Protected(), handler.GetNewsletterSubscribers)
	newsletter.Post("/broadcast", middleware.Protected(), validate.BroadcastNewsletter(), handler.BroadcastNewsletter)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)
	statistic.Get("/revenue", middleware.Protected(), handler.GetRevenueByDay)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	// Public storefront
	shop := v1.Group("/shop")
	shop.Get("/categories", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetCategories)
	shop.Get("/products", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetProducts)
	shop.Get("/products/:slug", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetProductBySlug)
	shop.Get("/products/:productId/reviews", validate.GetById("productId"), handler.GetProductReviews)
	shop.Post("/newsletter/subscribe", validate.SubscribeNewsletter(), handler.SubscribeNewsletter)
	shop.Post("/newsletter/unsubscribe", validate.SubscribeNewsletter(), handler.UnsubscribeNewsletter)
	shop.Post("/promo-code/apply", validate.ApplyPromoCode(), handler.ApplyPromoCode)

	cart := v1.Group("/cart")
	cart.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetCart)
	cart.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.AddCartItem(), handler.AddCartItem)
	cart.Put("/:cartItemId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.UpdateCartItem("cartItemId"), handler.UpdateCartItem)
	cart.Delete("/clear", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.ClearCart)
	cart.Delete("/:cartItemId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("cartItemId"), handler.RemoveCartItem)

	myOrder := v1.Group("/my-order")
	myOrder.Post("/checkout", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.Checkout(), handler.Checkout)
	myOrder.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyOrders)
	myOrder.Get("/:orderNumber", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyOrderDetail)
	myOrder.Post("/:orderNumber/cancel", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.CancelMyOrder)

	myReview := v1.Group("/my-review")
	myReview.Get("/eligibility/:productId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("productId"), handler.GetReviewEligibility)
	myReview.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreateReview(), handler.CreateReview)

	me := v1.Group("/me")
	me.Post("/send-otp", validate.SendOtp(), handler.SendOtp)
	me.Post("/verify-otp", validate.VerifyOtp(), handler.VerifyOtp)
	me.Post("/refresh-token", handler.RefreshCustomerToken)
	me.Post("/logout", handler.LogoutCustomer)
	me.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetCurrentCustomer)
	me.Put("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.EditCustomer(), handler.EditCurrentCustomer)
	me.Get("/address", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetAddresses)
	me.Post("/address", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreateAddress(), handler.CreateAddress)
	me.Put("/address/:addressId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("addressId"), validate.CreateAddress(), handler.EditAddress)
	me.Delete("/address/:addressId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("addressId"), handler.DeleteAddress)
}
