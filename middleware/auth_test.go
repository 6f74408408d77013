package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SamiMK0/smart-room-management-system/config"
	"github.com/SamiMK0/smart-room-management-system/models"
	"github.com/SamiMK0/smart-room-management-system/services"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *services.TokenService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	tokens := services.NewTokenService(db, "test-secret", time.Hour)

	r := gin.New()
	protected := r.Group("", Auth(tokens))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": Actor(c).ID})
	})
	protected.GET("/admin-only", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, tokens, db
}

func seedTokenUser(t *testing.T, db *gorm.DB, tokens *services.TokenService, role string) (models.User, string) {
	t.Helper()
	user := models.User{Name: "T", Email: role + "@example.com", Password: "hash", Role: role}
	require.NoError(t, db.Create(&user).Error)
	token, err := tokens.Issue(&user)
	require.NoError(t, err)
	return user, token
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	for _, header := range []string{"", "Basic abc", "Bearer", "bearer token"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.JSONEq(t, `{"message":"Unauthenticated"}`, w.Body.String())
	}
}

func TestAuthAcceptsIssuedToken(t *testing.T) {
	r, tokens, db := newAuthRouter(t)
	_, token := seedTokenUser(t, db, tokens, models.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id"`)
}

func TestAuthRejectsRevokedToken(t *testing.T) {
	r, tokens, db := newAuthRouter(t)
	_, token := seedTokenUser(t, db, tokens, models.RoleUser)

	var record models.AccessToken
	require.NoError(t, db.First(&record).Error)
	require.NoError(t, tokens.Revoke(record.ID))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r, tokens, db := newAuthRouter(t)
	_, userToken := seedTokenUser(t, db, tokens, models.RoleUser)
	_, adminToken := seedTokenUser(t, db, tokens, models.RoleAdmin)

	t.Run("user is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
