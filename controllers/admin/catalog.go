package adminControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/usman-51/Dream-shop/models"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name           string `json:"name" binding:"required"`
	CategoryOnline string `json:"category_online"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	Gender         string `json:"gender"`
	ProductType    string `json:"product_type"`
}

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	TitleOnline string  `json:"title_online"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	IsAvailable *bool   `json:"is_available"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

type VariationInput struct {
	Category string `json:"category" binding:"required"`
	Value    string `json:"value" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

func validGender(g string) bool {
	switch g {
	case "", models.GenderMen, models.GenderWomen, models.GenderOther:
		return true
	}
	return false
}

func validProductType(t string) bool {
	switch t {
	case "", models.TypeClothingMen, models.TypeClothingWomen,
		models.TypeAccessoriesMen, models.TypeAccessoriesWomen, models.TypeOther:
		return true
	}
	return false
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !validGender(input.Gender) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gender must be H, F or O"})
			return
		}
		if !validProductType(input.ProductType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product type must be A, B, X, Y or O"})
			return
		}
		category := models.Category{
			Name:           input.Name,
			CategoryOnline: input.CategoryOnline,
			Slug:           slug.Make(input.Name),
			Description:    input.Description,
			Image:          input.Image,
			Gender:         input.Gender,
			ProductType:    input.ProductType,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		if input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		available := true
		if input.IsAvailable != nil {
			available = *input.IsAvailable
		}
		product := models.Product{
			Name:        input.Name,
			TitleOnline: input.TitleOnline,
			Slug:        slug.Make(input.Name),
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Stock:       input.Stock,
			IsAvailable: available,
			CategoryID:  category.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// POST /admin/products/:id/variations
func CreateVariation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var input VariationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Category != models.VariationColor && input.Category != models.VariationSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Variation category must be color or size"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(productID)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		active := true
		if input.IsActive != nil {
			active = *input.IsActive
		}
		variation := models.Variation{
			ProductID: product.ID,
			Category:  input.Category,
			Value:     input.Value,
			IsActive:  active,
		}
		if err := db.Create(&variation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create variation"})
			return
		}
		c.JSON(http.StatusCreated, variation)
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(catalog *repository.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		if err := catalog.DeleteCategory(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// DELETE /admin/products/:id
func DeleteProduct(catalog *repository.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		if err := catalog.DeleteProduct(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
