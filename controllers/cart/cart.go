package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/usman-51/Dream-shop/middleware"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
)

// POST /cart/add/:product_id
//
// Form fields are treated as (category, value) variation selections, e.g.
// color=red&size=m. Fields that do not match an active variation of the
// product are dropped without error.
func AddCartItem(carts *repository.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := paramUint(c, "product_id")
		if !ok {
			return
		}

		cart, err := carts.Resolve(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form input"})
			return
		}
		var selection []repository.VariationPair
		for key, values := range c.Request.PostForm {
			for _, value := range values {
				selection = append(selection, repository.VariationPair{Category: key, Value: value})
			}
		}

		item, err := carts.AddItem(c.Request.Context(), cart.CartID, productID, selection)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// POST /cart/remove/:product_id/:item_id
//
// Decrement mode: quantity drops by one, the row disappears at zero. An item
// that does not belong to this cart and product is a no-op.
func RemoveCartItem(carts *repository.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := paramUint(c, "product_id")
		if !ok {
			return
		}
		itemID, ok := paramUint(c, "item_id")
		if !ok {
			return
		}

		cart, err := carts.Resolve(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		if err := carts.RemoveItem(c.Request.Context(), cart.CartID, productID, itemID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// POST /cart/remove-item/:product_id/:item_id
//
// Purge mode: the row is deleted regardless of quantity; a missing row is 404.
func RemoveCartItemFull(carts *repository.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := paramUint(c, "product_id")
		if !ok {
			return
		}
		itemID, ok := paramUint(c, "item_id")
		if !ok {
			return
		}

		cart, err := carts.Resolve(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		if err := carts.PurgeItem(c.Request.Context(), cart.CartID, productID, itemID); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// GET /cart
func GetCart(carts *repository.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		totals, err := carts.TotalsBySession(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, totals)
	}
}

// GET /cart/count
func CartCount(carts *repository.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := carts.Count(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart_count": count})
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
