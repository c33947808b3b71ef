package handler

import (
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetProducts is the public catalog listing: text search, category and
// price filters, sorting and pagination. Only active products are shown.
func GetProducts(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterProduct
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	query := db.Model(&model.Product{}).Where("products.active = ?", true)
	query = applyProductFilter(query, filter)

	var totalCount int64
	query.Count(&totalCount)

	var products model.Products
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Preload("Category").Preload("Images").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func applyProductFilter(query *gorm.DB, filter model.FilterProduct) *gorm.DB {
	if filter.SearchKey != "" {
		query = query.Where("products.name ILIKE ? OR products.description ILIKE ?",
			"%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}
	if filter.CategoryId != nil {
		query = query.Where("products.category_id = ?", *filter.CategoryId)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}

	switch filter.Sort {
	case "price_asc":
		query = query.Order("products.price asc")
	case "price_desc":
		query = query.Order("products.price desc")
	default:
		query = query.Order("products.created_at desc")
	}

	return query
}

// GetProductBySlug returns the public detail page payload: the product
// with its reviews and average rating.
func GetProductBySlug(c *fiber.Ctx) error {
	db := database.DB
	productSlug := c.Params("slug")

	var product model.Product
	err := db.Preload("Category").Preload("Images").
		Where("slug = ? AND active = ?", productSlug, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var reviews model.Reviews
	if err := db.Where("product_id = ?", product.ID).Order("created_at desc").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var avgRating float64
	db.Model(&model.Review{}).
		Where("product_id = ?", product.ID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avgRating)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"product":       product,
		"reviews":       reviews,
		"averageRating": utils.Round2(avgRating),
		"reviewCount":   len(reviews),
	})
}

// GetAdminProducts lists products for the back office, including
// inactive ones.
func GetAdminProducts(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterProduct
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	query := db.Model(&model.Product{})
	if filter.Active != nil {
		query = query.Where("products.active = ?", *filter.Active)
	}
	query = applyProductFilter(query, filter)

	var totalCount int64
	query.Count(&totalCount)

	var products model.Products
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Preload("Category").Preload("Images").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateProduct(c *fiber.Ctx) error {
	db := database.DB

	productInput, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var category model.Category
	if err := db.First(&category, productInput.CategoryId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category does not exist", err, "categoryId")
	}

	var product model.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		product = model.Product{
			Name:              productInput.Name,
			Slug:              helper.GenerateUniqueProductSlug(tx, productInput.Name),
			Description:       productInput.Description,
			Price:             productInput.Price,
			CompareAtPrice:    productInput.CompareAtPrice,
			CategoryId:        productInput.CategoryId,
			Sizes:             productInput.Sizes,
			Colors:            productInput.Colors,
			Stock:             productInput.Stock,
			LowStockThreshold: productInput.LowStockThreshold,
			Active:            true,
		}
		if product.LowStockThreshold == 0 {
			product.LowStockThreshold = 5
		}

		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		for i, url := range productInput.Images {
			image := model.ProductImage{
				ProductId: product.ID,
				Url:       url,
				IsPrimary: i == 0,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	helper.EmitNotification(
		constants.NOTIFY_PRODUCT,
		"Product created",
		"Product "+product.Name+" was added to the catalog",
		utils.Ptr(product.ID),
		utils.StringPtr("product"),
	)

	db.Preload("Category").Preload("Images").First(&product, product.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func EditProduct(c *fiber.Ctx) error {
	db := database.DB

	productId := c.Locals("inputProductId").(uint)
	productInput, ok := c.Locals("inputEditProduct").(model.EditProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if productInput.CategoryId != nil {
		var category model.Category
		if err := db.First(&category, *productInput.CategoryId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category does not exist", err, "categoryId")
		}
	}

	renamed := productInput.Name != nil && *productInput.Name != product.Name

	copier.CopyWithOption(&product, &productInput, copier.Option{IgnoreEmpty: true})
	if productInput.Active != nil {
		product.Active = *productInput.Active
	}
	if renamed {
		product.Slug = helper.GenerateUniqueProductSlug(db, product.Name)
	}

	if err := db.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Category").Preload("Images").First(&product, product.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// DeleteProducts soft-disables products instead of removing rows, so
// existing order lines keep a valid reference.
func DeleteProducts(c *fiber.Ctx) error {
	db := database.DB

	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := db.Model(&model.Product{}).Where("id IN ?", deleteIds.IDs).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Products disabled"})
}

func GetCategories(c *fiber.Ctx) error {
	db := database.DB

	var categories []model.Category
	if err := db.Where("active = ?", true).Order("name asc").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	db := database.DB

	var input struct {
		Name  string  `json:"name"`
		Image *string `json:"image"`
	}
	if err := c.BodyParser(&input); err != nil || input.Name == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Name is required", err, "name")
	}

	var count int64
	db.Model(&model.Category{}).Where("LOWER(name) = LOWER(?)", input.Name).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Category already exists", nil, "name")
	}

	category := model.Category{
		Name:   input.Name,
		Slug:   helper.GenerateUniqueCategorySlug(db, input.Name),
		Image:  input.Image,
		Active: true,
	}
	if err := db.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func EditCategory(c *fiber.Ctx) error {
	db := database.DB
	categoryId := c.Locals("inputId").(int)

	var category model.Category
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	var input struct {
		Name   *string `json:"name"`
		Image  *string `json:"image"`
		Active *bool   `json:"active"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	if input.Name != nil && *input.Name != "" && *input.Name != category.Name {
		category.Name = *input.Name
		category.Slug = helper.GenerateUniqueCategorySlug(db, *input.Name)
	}
	if input.Image != nil {
		category.Image = input.Image
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	if err := db.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}
