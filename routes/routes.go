package routes

import (
	"github.com/usman-51/Dream-shop/middleware"
	"github.com/usman-51/Dream-shop/pkg/config"
	"github.com/usman-51/Dream-shop/pkg/session"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the account, storefront,
// cart and catalog admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store, cfg *config.Config) {
	accounts := repository.NewAccountStore(db)
	catalog := repository.NewCatalogStore(db)
	carts := repository.NewCartStore(db)

	// Every storefront request rides on a browser session cookie.
	r.Use(middleware.CartSession(sessions, cfg.Session.CookieName))

	SetupAccountRoutes(r, accounts, sessions, cfg.Session.JwtSecret)
	SetupStoreRoutes(r, db, catalog, carts)
	SetupCartRoutes(r, carts)
	SetupAdminRoutes(r, db, catalog)
}
