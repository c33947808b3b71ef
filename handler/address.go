package handler

import (
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetAddresses(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var addresses []model.Address
	err := database.DB.Where("customer_id = ?", customerId).
		Order("is_default desc, created_at desc").
		Find(&addresses).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, addresses)
}

// CreateAddress saves a shipping address. Marking it default clears the
// flag on the customer's other addresses.
func CreateAddress(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputAddress").(model.CreateAddressInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var address model.Address
	err := db.Transaction(func(tx *gorm.DB) error {
		if input.IsDefault {
			if err := tx.Model(&model.Address{}).
				Where("customer_id = ?", customerId).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}

		address = model.Address{CustomerId: customerId}
		copier.Copy(&address, &input)

		return tx.Create(&address).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, address)
}

func EditAddress(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	addressId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputAddress").(model.CreateAddressInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var address model.Address
	if err := db.Where("id = ? AND customer_id = ?", addressId, customerId).First(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if input.IsDefault && !address.IsDefault {
			if err := tx.Model(&model.Address{}).
				Where("customer_id = ?", customerId).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}

		copier.Copy(&address, &input)
		address.IsDefault = input.IsDefault

		return tx.Save(&address).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, address)
}

func DeleteAddress(c *fiber.Ctx) error {
	customerId, ok := currentCustomerId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	addressId := c.Locals("inputId").(int)

	result := database.DB.Where("id = ? AND customer_id = ?", addressId, customerId).Delete(&model.Address{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Address removed"})
}
