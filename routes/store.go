package routes

import (
	storeControllers "github.com/usman-51/Dream-shop/controllers/store"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, catalog *repository.CatalogStore, carts *repository.CartStore) {
	r.GET("/", storeControllers.Home(catalog))

	store := r.Group("/store")
	{
		store.GET("", storeControllers.Browse(catalog))
		store.GET("/search", storeControllers.Search(catalog))
		store.GET("/export", storeControllers.ExportCatalog(db))
		store.GET("/:category_slug", storeControllers.Browse(catalog))
		store.GET("/:category_slug/:product_slug", storeControllers.ProductDetail(catalog, carts))
	}
}
