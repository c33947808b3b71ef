package handler

import (
	"errors"
	"log"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
)

// SendOtp starts a passwordless login: find or create the customer by
// phone, store a fresh 6-digit code with a 10 minute expiry, and deliver
// it. Delivery is glue (email when on file, log otherwise) and never
// blocks the flow.
func SendOtp(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("SendOtp").(model.SendOtpInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	customer, err := helper.GetCustomerByPhone(input.Phone)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	isNewCustomer := false
	if customer == nil {
		customer = &model.Customer{Phone: input.Phone, IsActive: true}
		if err := db.Create(customer).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
		isNewCustomer = true
	}

	if !customer.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	otp, err := helper.GenerateOtp()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	expiresAt := time.Now().Add(helper.OtpTTL)
	if err := db.Model(customer).Updates(map[string]any{
		"otp":            otp,
		"otp_expires_at": expiresAt,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if customer.Email != nil && *customer.Email != "" {
		if err := utils.SendOtpEmail(*customer.Email, otp); err != nil {
			log.Printf("failed to send OTP email to customer %d: %v", customer.ID, err)
		}
	} else {
		// No email on file; without an SMS gateway the code is only logged.
		log.Printf("OTP for %s: %s", customer.Phone, otp)
	}

	if isNewCustomer {
		helper.EmitNotification(
			constants.NOTIFY_USER,
			"New customer",
			"A new customer registered with phone "+customer.Phone,
			utils.Ptr(customer.ID),
			utils.StringPtr("customer"),
		)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":   "Login code sent",
		"expiresAt": expiresAt,
	})
}

// VerifyOtp completes the login: check the code, clear it, mark the
// customer verified and set the JWT cookies.
func VerifyOtp(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("VerifyOtp").(model.VerifyOtpInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	customer, err := helper.GetCustomerByPhone(input.Phone)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("customer not exists"))
	}

	if err := helper.VerifyOtp(customer, input.Otp, time.Now()); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	if err := db.Model(customer).Updates(map[string]any{
		"otp":            nil,
		"otp_expires_at": nil,
		"verified":       true,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tokenClaim := model.TokenClaim{
		CustomerId: customer.ID,
		Username:   customer.Phone,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":  "Login success",
		"customer": customer,
		"tokens": model.TokenData{
			AccessToken:  token,
			RefreshToken: refreshToken,
		},
	})
}

func GetCurrentCustomer(c *fiber.Ctx) error {
	if customer, ok := c.Locals("customer").(*model.Customer); ok && customer != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, customer)
	}

	customerId, ok := c.Locals("customerId").(uint)
	if !ok || customerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var customer model.Customer
	if err := database.DB.Preload("Addresses").First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func EditCurrentCustomer(c *fiber.Ctx) error {
	db := database.DB

	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	customerInput, ok := c.Locals("inputEditCustomer").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if customerInput.Email != nil && *customerInput.Email != "" {
		emailTaken, err := helper.CheckByEmailCustomer(*customerInput.Email, &customer.ID)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "email")
		}
		if emailTaken {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Email already in use", nil, "email")
		}
	}

	copier.CopyWithOption(customer, &customerInput, copier.Option{IgnoreEmpty: true})

	if err := db.Save(customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func RefreshCustomerToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Refresh token not found", nil)
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token claims", nil)
	}

	customerIdFloat, ok := claims["customerId"].(float64)
	if !ok || customerIdFloat == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid customerId in payload", nil)
	}
	username, _ := claims["username"].(string)

	tokenClaim := model.TokenClaim{
		CustomerId: uint(customerIdFloat),
		Username:   username,
	}

	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    newAccessToken,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    newRefreshToken,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "refresh success",
	})
}

func LogoutCustomer(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "logout success"})
}

// GetCustomers lists customers for the back office.
func GetCustomers(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterCustomer
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	query := db.Model(&model.Customer{})
	if filter.SearchKey != "" {
		query = query.Where("phone ILIKE ? OR email ILIKE ? OR full_name ILIKE ?",
			"%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	query.Count(&totalCount)

	var customers model.Customers
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("created_at desc").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.Preload("Addresses").First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}
