package handler

import (
	"errors"
	"testing"

	"shop_manager/helper"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB opens a gorm session that builds SQL without touching a
// database.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=shop dbname=shop",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestIsPromoRejection(t *testing.T) {
	rejections := []error{
		helper.ErrPromoNotActive,
		helper.ErrPromoNotStarted,
		helper.ErrPromoExpired,
		helper.ErrPromoLimitReached,
		&helper.MinPurchaseError{Minimum: 500},
	}
	for _, err := range rejections {
		assert.True(t, isPromoRejection(err), "expected %v to read as a promo rejection", err)
	}

	assert.False(t, isPromoRejection(errors.New("connection refused")))
	assert.False(t, isPromoRejection(gorm.ErrInvalidTransaction))
}

func TestRemovePurchasedCartLinesScopedToVariant(t *testing.T) {
	db := dryRunDB(t)

	var statements []string
	var vars [][]interface{}
	err := db.Callback().Delete().After("gorm:delete").Register("capture_delete", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
		vars = append(vars, tx.Statement.Vars)
	})
	require.NoError(t, err)

	items := []model.OrderItem{
		{ProductId: 3, Size: "M", Color: "black"},
		{ProductId: 4},
	}

	err = removePurchasedCartLines(db.Session(&gorm.Session{DryRun: true}), 7, items)
	assert.NoError(t, err)
	require.Len(t, statements, 2, "one delete per purchased line")

	// The delete matches the exact variant, so an unpurchased size or
	// color of the same product survives checkout.
	assert.Contains(t, statements[0], "size")
	assert.Contains(t, statements[0], "color")
	assert.Contains(t, vars[0], uint(7))
	assert.Contains(t, vars[0], uint(3))
	assert.Contains(t, vars[0], "M")
	assert.Contains(t, vars[0], "black")

	assert.Contains(t, vars[1], uint(4))
}
