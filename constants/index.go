package constants

// Roles
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
)

// Order status
const (
	ORDER_PENDING    = "pending"
	ORDER_PROCESSING = "processing"
	ORDER_SHIPPED    = "shipped"
	ORDER_DELIVERED  = "delivered"
	ORDER_CANCELLED  = "cancelled"
)

// Payment status
const (
	PAYMENT_PENDING  = "pending"
	PAYMENT_PAID     = "paid"
	PAYMENT_FAILED   = "failed"
	PAYMENT_REFUNDED = "refunded"
)

// Payment methods
const (
	PAYMENT_METHOD_COD    = "cod"
	PAYMENT_METHOD_CARD   = "card"
	PAYMENT_METHOD_UPI    = "upi"
	PAYMENT_METHOD_WALLET = "wallet"
)

// Promo code discount types
const (
	DISCOUNT_PERCENTAGE = "percentage"
	DISCOUNT_FIXED      = "fixed"
)

// Notification types
const (
	NOTIFY_ORDER    = "order"
	NOTIFY_STOCK    = "stock"
	NOTIFY_DELIVERY = "delivery"
	NOTIFY_PRODUCT  = "product"
	NOTIFY_USER     = "user"
	NOTIFY_PAYMENT  = "payment"
)

// Common response messages
const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Create failed"
	ERROR_EDIT                 = "Update failed"
	ERROR_DELETE               = "Delete failed"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"
	NOT_FOUND_RECORDS          = "Record not found"
	NOT_ADMIN                  = "Admin permission required"
	NOT_LOGGED_IN              = "Please log in"
	MISSING_LOGIN_INPUT        = "Missing login input"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Invalid password"
	ACCOUNT_NOT_ACTIVE         = "Account is not active"
	CAN_NOT_HASH_PASSWORD      = "Could not hash password"
	DATA_INPUT_IS_NOT_NUMBER   = "Input is not a number"
	PHONE_CUSTOMER_EXISTS      = "Phone number already registered"
)

// Promo code rejection messages
const (
	PROMO_INVALID_CODE   = "Invalid promo code"
	PROMO_NOT_ACTIVE     = "Promo code is not active"
	PROMO_NOT_STARTED    = "Promo code is not yet active"
	PROMO_EXPIRED        = "Promo code has expired"
	PROMO_LIMIT_REACHED  = "Promo code usage limit reached"
	PROMO_DUPLICATE_CODE = "Promo code already exists"
)

// Review messages
const (
	REVIEW_ALREADY_EXISTS = "You have already reviewed this product"
	REVIEW_NOT_PURCHASED  = "You can only review products from delivered orders"
)

var OrderStatuses = []string{ORDER_PENDING, ORDER_PROCESSING, ORDER_SHIPPED, ORDER_DELIVERED, ORDER_CANCELLED}
var PaymentStatuses = []string{PAYMENT_PENDING, PAYMENT_PAID, PAYMENT_FAILED, PAYMENT_REFUNDED}
var PaymentMethods = []string{PAYMENT_METHOD_COD, PAYMENT_METHOD_CARD, PAYMENT_METHOD_UPI, PAYMENT_METHOD_WALLET}
var DiscountTypes = []string{DISCOUNT_PERCENTAGE, DISCOUNT_FIXED}
var NotificationTypes = []string{NOTIFY_ORDER, NOTIFY_STOCK, NOTIFY_DELIVERY, NOTIFY_PRODUCT, NOTIFY_USER, NOTIFY_PAYMENT}
