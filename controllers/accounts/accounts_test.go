package accountControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/usman-51/Dream-shop/middleware"
	"github.com/usman-51/Dream-shop/models"
	"github.com/usman-51/Dream-shop/pkg/session"
	"github.com/usman-51/Dream-shop/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Account{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStore(rdb, 24*time.Hour)

	accounts := repository.NewAccountStore(db)
	r := gin.New()
	r.POST("/register", Register(accounts))
	r.GET("/login", LoginPrompt())
	r.POST("/login", Login(accounts, sessions, testJWTSecret))
	r.GET("/logout", middleware.RequireAuth(sessions, testJWTSecret), Logout(sessions))
	return r, db
}

func validRegisterPayload() map[string]string {
	return map[string]string{
		"civility":         "M",
		"first_name":       "Jean",
		"last_name":        "Dupont",
		"address":          "1 rue de la Paix",
		"postal_code":      "75001",
		"city":             "Paris",
		"country":          "France",
		"email":            "jean.dupont@example.com",
		"phone_number":     "06 12 34 56 78",
		"birth_date":       "10/05/1990",
		"password":         "Str0ng!Pass",
		"confirm_password": "Str0ng!Pass",
	}
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	r, db := newTestRouter(t)

	w := postJSON(r, "/register", validRegisterPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success": true, "username": "jean.dupont"}`, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Account{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterReturnsFieldErrors(t *testing.T) {
	r, db := newTestRouter(t)

	payload := validRegisterPayload()
	payload["password"] = "weak"
	payload["confirm_password"] = "weak"
	payload["postal_code"] = "123"

	w := postJSON(r, "/register", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Errors  repository.FieldErrors `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors["password"])
	assert.NotEmpty(t, resp.Errors["postal_code"])

	var count int64
	require.NoError(t, db.Model(&models.Account{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRegisterRejectsMalformedBirthDate(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := validRegisterPayload()
	payload["birth_date"] = "1990-05-10"
	w := postJSON(r, "/register", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "birth_date")
}

func TestLoginLogoutFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	require.Equal(t, http.StatusOK, postJSON(r, "/register", validRegisterPayload()).Code)

	w := postJSON(r, "/login", map[string]string{
		"email":    "jean.dupont@example.com",
		"password": "Str0ng!Pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "jean.dupont", resp.Username)

	logout := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/logout", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, logout().Code)
	// The token still parses, but its session is revoked.
	assert.Equal(t, http.StatusUnauthorized, logout().Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)
	require.Equal(t, http.StatusOK, postJSON(r, "/register", validRegisterPayload()).Code)

	wrongPassword := postJSON(r, "/login", map[string]string{
		"email":    "jean.dupont@example.com",
		"password": "WrongPass1!",
	})
	unknownAccount := postJSON(r, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "Str0ng!Pass",
	})

	// Same status and message either way.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownAccount.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownAccount.Body.String())
}
