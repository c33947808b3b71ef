package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.0, Round2(9.999))
	assert.Equal(t, 3.33, Round2(3.333))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 1200.0, Round2(1200))
	assert.Equal(t, -2.5, Round2(-2.499))
}

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, 0.0, CalculateGrowth(0, 0))
	assert.Equal(t, 100.0, CalculateGrowth(500, 0), "growth from zero reads as 100")
	assert.Equal(t, 50.0, CalculateGrowth(150, 100))
	assert.Equal(t, -50.0, CalculateGrowth(50, 100))
	assert.Equal(t, 0.0, CalculateGrowth(100, 100))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))

	p := StringPtr("hello")
	assert.NotNil(t, p)
	assert.Equal(t, "hello", *p)
}

func TestPtr(t *testing.T) {
	i := Ptr(42)
	assert.Equal(t, 42, *i)

	b := Ptr(false)
	assert.False(t, *b)
}
