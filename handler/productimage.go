package handler

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

var allowedImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// UploadProductImage takes a multipart file, pushes it to Cloudinary
// and attaches the resulting URL to the product.
func UploadProductImage(c *fiber.Ctx) error {
	db := database.DB
	productId := c.Locals("inputId").(int)

	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Image file is required", err, "image")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unsupported image format", nil, "image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not read uploaded file", err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	uploadResult, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:   "products",
		PublicID: fmt.Sprintf("product_%d_%s", product.ID, strings.TrimSuffix(fileHeader.Filename, ext)),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	var existing int64
	db.Model(&model.ProductImage{}).Where("product_id = ?", product.ID).Count(&existing)

	image := model.ProductImage{
		ProductId: product.ID,
		Url:       uploadResult.SecureURL,
		PublicID:  utils.StringPtr(uploadResult.PublicID),
		IsPrimary: existing == 0,
	}
	if err := db.Create(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, image)
}

// DeleteProductImage removes the row and best-effort deletes the asset
// on Cloudinary.
func DeleteProductImage(c *fiber.Ctx) error {
	db := database.DB
	imageId := c.Locals("inputId").(int)

	var image model.ProductImage
	if err := db.First(&image, imageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if image.PublicID != nil && *image.PublicID != "" {
		cld := helper.InitCloudinary()
		if _, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: *image.PublicID}); err != nil {
			log.Printf("failed to delete Cloudinary image %s: %v", *image.PublicID, err)
		}
	}

	if err := db.Delete(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	if image.IsPrimary {
		var next model.ProductImage
		if err := db.Where("product_id = ?", image.ProductId).Order("created_at asc").First(&next).Error; err == nil {
			db.Model(&next).Update("is_primary", true)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Image deleted"})
}
