package accountControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/usman-51/Dream-shop/auth"
	"github.com/usman-51/Dream-shop/middleware"
	"github.com/usman-51/Dream-shop/pkg/session"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/gin-gonic/gin"
)

// birthDateLayout matches the storefront's date inputs.
const birthDateLayout = "02/01/2006"

type RegisterRequest struct {
	Civility        string `json:"civility"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Address         string `json:"address"`
	PostalCode      string `json:"postal_code"`
	City            string `json:"city"`
	Country         string `json:"country"`
	Email           string `json:"email" binding:"required"`
	PhoneNumber     string `json:"phone_number"`
	BirthDate       string `json:"birth_date"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /register
func Register(accounts *repository.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"errors":  repository.FieldErrors{"birth_date": {"Veuillez entrer une date de naissance valide (JJ/MM/AAAA)."}},
			})
			return
		}

		input := repository.RegistrationInput{
			Civility:        req.Civility,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Address:         req.Address,
			PostalCode:      req.PostalCode,
			City:            req.City,
			Country:         req.Country,
			Email:           req.Email,
			PhoneNumber:     req.PhoneNumber,
			BirthDate:       birthDate,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		}

		account, fieldErrors, err := accounts.Register(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		if fieldErrors.HasErrors() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrors})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "username": account.Username})
	}
}

// POST /login
func Login(accounts *repository.AccountStore, sessions *session.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		account, err := accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, repository.ErrInvalidCredentials) {
				// Same message whether the account is missing or the password is wrong.
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Identification échouée, veuillez vérifier vos identifiants !"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		sessionID, err := sessions.CreateAuthSession(c.Request.Context(), account.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		token, err := auth.IssueToken(jwtSecret, account.ID, account.Username, sessionID, sessions.TTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":    token,
			"username": account.Username,
			"email":    account.Email,
		})
	}
}

// GET /login
func LoginPrompt() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Envoyez email et mot de passe en POST pour vous connecter."})
	}
}

// GET /logout
func Logout(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(middleware.AuthSessionKey)
		if err := sessions.DeleteAuthSession(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Vous êtes bien déconnecté !"})
	}
}
