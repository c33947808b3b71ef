package handler

import (
	"errors"
	"testing"

	"shop_manager/constants"
	"shop_manager/helper"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityPayload(t *testing.T) {
	t.Run("eligible carries the binding order", func(t *testing.T) {
		eligibility := &helper.ReviewEligibility{
			Order: &model.Order{DTO: model.DTO{ID: 9}},
		}

		payload, ok := eligibilityPayload(eligibility, nil)
		require.True(t, ok)
		assert.Equal(t, true, payload["eligible"])
		assert.Equal(t, uint(9), payload["orderId"])
	})

	t.Run("already reviewed attaches the prior review", func(t *testing.T) {
		existing := &model.Review{Rating: 4, Title: "Good jacket"}
		eligibility := &helper.ReviewEligibility{Existing: existing}

		payload, ok := eligibilityPayload(eligibility, helper.ErrAlreadyReviewed)
		require.True(t, ok)
		assert.Equal(t, false, payload["eligible"])
		assert.Equal(t, constants.REVIEW_ALREADY_EXISTS, payload["reason"])
		assert.Equal(t, existing, payload["review"])
	})

	t.Run("not purchased", func(t *testing.T) {
		payload, ok := eligibilityPayload(nil, helper.ErrNotPurchased)
		require.True(t, ok)
		assert.Equal(t, false, payload["eligible"])
		assert.Equal(t, constants.REVIEW_NOT_PURCHASED, payload["reason"])
	})

	t.Run("unexpected error is not a verdict", func(t *testing.T) {
		payload, ok := eligibilityPayload(nil, errors.New("connection refused"))
		assert.False(t, ok)
		assert.Nil(t, payload)
	})
}
