package routes

import (
	accountControllers "github.com/usman-51/Dream-shop/controllers/accounts"
	"github.com/usman-51/Dream-shop/middleware"
	"github.com/usman-51/Dream-shop/pkg/session"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
)

func SetupAccountRoutes(r *gin.Engine, accounts *repository.AccountStore, sessions *session.Store, jwtSecret string) {
	r.POST("/register", accountControllers.Register(accounts))
	r.GET("/login", accountControllers.LoginPrompt())
	r.POST("/login", accountControllers.Login(accounts, sessions, jwtSecret))

	// Logout needs a live auth session.
	r.GET("/logout", middleware.RequireAuth(sessions, jwtSecret), accountControllers.Logout(sessions))
}
