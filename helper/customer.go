package helper

import (
	"errors"

	"shop_manager/database"
	"shop_manager/model"

	"gorm.io/gorm"
)

func GetCustomerByPhone(phone string) (*model.Customer, error) {
	db := database.DB
	var customer model.Customer
	if err := db.Where(&model.Customer{Phone: phone}).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func CheckByEmailCustomer(email string, id *uint) (bool, error) {
	db := database.DB
	var count int64
	if id == nil {
		if err := db.Model(&model.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return false, err
		}
	} else {
		if err := db.Model(&model.Customer{}).Where("email = ? and id != ?", email, *id).Count(&count).Error; err != nil {
			return false, err
		}
	}
	return count > 0, nil
}
