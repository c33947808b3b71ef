package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"shop_manager/model"
)

const OtpTTL = 10 * time.Minute

// GenerateOtp returns a 6-digit numeric code.
func GenerateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// VerifyOtp checks the submitted code against the customer's stored OTP.
func VerifyOtp(customer *model.Customer, otp string, now time.Time) error {
	if customer.Otp == nil || customer.OtpExpiresAt == nil {
		return fmt.Errorf("no pending login code")
	}
	if now.After(*customer.OtpExpiresAt) {
		return fmt.Errorf("login code has expired")
	}
	if *customer.Otp != otp {
		return fmt.Errorf("incorrect login code")
	}
	return nil
}
