package validate

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewApp() *fiber.App {
	app := fiber.New()
	app.Post("/reviews", CreateReview(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postReview(t *testing.T, app *fiber.App, input model.CreateReviewInput) *http.Response {
	t.Helper()

	payload, err := json.Marshal(input)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/reviews", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateReviewBounds(t *testing.T) {
	app := reviewApp()

	valid := model.CreateReviewInput{
		ProductId: 1,
		OrderId:   2,
		Rating:    5,
		Title:     "Great fit",
		Comment:   "Exactly as pictured, fits well.",
	}

	t.Run("valid input passes through", func(t *testing.T) {
		resp := postReview(t, app, valid)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	cases := []struct {
		name   string
		mutate func(in *model.CreateReviewInput)
	}{
		{"rating below 1", func(in *model.CreateReviewInput) { in.Rating = 0 }},
		{"rating above 5", func(in *model.CreateReviewInput) { in.Rating = 6 }},
		{"title shorter than 3", func(in *model.CreateReviewInput) { in.Title = "ab" }},
		{"comment shorter than 10", func(in *model.CreateReviewInput) { in.Comment = "too short" }},
		{"missing product id", func(in *model.CreateReviewInput) { in.ProductId = 0 }},
		{"missing order id", func(in *model.CreateReviewInput) { in.OrderId = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)

			resp := postReview(t, app, input)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}

	t.Run("boundary values pass", func(t *testing.T) {
		input := valid
		input.Rating = 1
		input.Title = "Fit"
		input.Comment = "Ten chars!"

		resp := postReview(t, app, input)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
