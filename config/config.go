package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config returns the value of the given .env key, falling back to the
// process environment when no .env file is present.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		return os.Getenv(key)
	}
	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

func ConfigFloat(key string, fallback float64) float64 {
	v := Config(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fmt.Printf("invalid float for %s: %s, using %.2f\n", key, v, fallback)
		return fallback
	}
	return f
}
