package routes

import (
	cartControllers "github.com/usman-51/Dream-shop/controllers/cart"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(r *gin.Engine, carts *repository.CartStore) {
	cart := r.Group("/cart")
	{
		cart.GET("", cartControllers.GetCart(carts))
		cart.GET("/count", cartControllers.CartCount(carts))
		cart.POST("/add/:product_id", cartControllers.AddCartItem(carts))
		cart.POST("/remove/:product_id/:item_id", cartControllers.RemoveCartItem(carts))
		cart.POST("/remove-item/:product_id/:item_id", cartControllers.RemoveCartItemFull(carts))
	}
}
