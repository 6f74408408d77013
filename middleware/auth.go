package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/models"
	"github.com/SamiMK0/smart-room-management-system/services"
)

const (
	actorKey = "actor"
	tokenKey = "accessToken"
)

// Auth validates the bearer token and stores the actor in the request
// context. Handlers read it back with Actor(c); no global session state.
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}

		user, record, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}

		c.Set(actorKey, &user)
		c.Set(tokenKey, &record)
		c.Next()
	}
}

// RequireAdmin gates a route to admin actors. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		if actor == nil || !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated user set by Auth, or nil.
func Actor(c *gin.Context) *models.User {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*models.User)
	return actor
}

// CurrentToken returns the access-token record behind the request.
func CurrentToken(c *gin.Context) *models.AccessToken {
	v, ok := c.Get(tokenKey)
	if !ok {
		return nil
	}
	token, _ := v.(*models.AccessToken)
	return token
}
