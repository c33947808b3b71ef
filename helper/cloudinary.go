package helper

import (
	"log"

	"shop_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary builds a client from the CLOUDINARY_* settings.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("cloudinary init failed: %v", err)
	}
	return cld
}
