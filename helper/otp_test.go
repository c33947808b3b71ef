package helper

import (
	"regexp"
	"testing"
	"time"

	"shop_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOtp(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)

	for i := 0; i < 50; i++ {
		otp, err := GenerateOtp()
		assert.NoError(t, err)
		assert.Regexp(t, pattern, otp, "codes are always 6 digits, zero padded")
	}
}

func TestVerifyOtp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	customerWith := func(otp string, expiresAt time.Time) *model.Customer {
		return &model.Customer{Otp: &otp, OtpExpiresAt: &expiresAt}
	}

	t.Run("valid code", func(t *testing.T) {
		customer := customerWith("123456", now.Add(5*time.Minute))
		assert.NoError(t, VerifyOtp(customer, "123456", now))
	})

	t.Run("no pending code", func(t *testing.T) {
		err := VerifyOtp(&model.Customer{}, "123456", now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no pending")
	})

	t.Run("expired code", func(t *testing.T) {
		customer := customerWith("123456", now.Add(-time.Minute))
		err := VerifyOtp(customer, "123456", now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("wrong code", func(t *testing.T) {
		customer := customerWith("123456", now.Add(5*time.Minute))
		err := VerifyOtp(customer, "654321", now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "incorrect")
	})

	t.Run("valid exactly at expiry", func(t *testing.T) {
		customer := customerWith("123456", now)
		assert.NoError(t, VerifyOtp(customer, "123456", now))
	})
}
