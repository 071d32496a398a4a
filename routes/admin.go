package routes

import (
	adminControllers "github.com/usman-51/Dream-shop/controllers/admin"
	"github.com/usman-51/Dream-shop/middleware"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, catalog *repository.CatalogStore) {
	admin := r.Group("/admin", middleware.ValidateAPIKey)
	{
		admin.POST("/categories", adminControllers.CreateCategory(db))
		admin.DELETE("/categories/:id", adminControllers.DeleteCategory(catalog))
		admin.POST("/products", adminControllers.CreateProduct(db))
		admin.DELETE("/products/:id", adminControllers.DeleteProduct(catalog))
		admin.POST("/products/:id/variations", adminControllers.CreateVariation(db))
	}
}
