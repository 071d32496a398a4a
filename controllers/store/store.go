package storeControllers

import (
	"errors"
	"net/http"

	"github.com/usman-51/Dream-shop/middleware"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// GET /store and GET /store/:category_slug
func Browse(catalog *repository.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := repository.BrowseQuery{
			CategorySlug: c.Param("category_slug"),
			Gender:       c.Query("gender"),
			ProductType:  c.Query("category"),
			Page:         cast.ToInt(c.Query("page")),
		}

		page, err := catalog.Browse(c.Request.Context(), query)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GET /store/search?keyword=
//
// A missing or empty keyword yields an empty result set, never the full
// catalog.
func Search(catalog *repository.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("keyword")

		result, err := catalog.Search(c.Request.Context(), keyword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /store/:category_slug/:product_slug
func ProductDetail(catalog *repository.CatalogStore, carts *repository.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.ProductBySlug(c.Request.Context(), c.Param("category_slug"), c.Param("product_slug"))
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		inCart, err := carts.InCart(c.Request.Context(), middleware.SessionID(c), product.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"single_product": product,
			"in_cart":        inCart,
		})
	}
}

// GET /
func Home(catalog *repository.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := catalog.Featured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home page"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
