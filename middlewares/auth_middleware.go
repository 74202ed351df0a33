package middlewares

import (
	"net/http"
	"strings"

	"github.com/chenashkenazi/food-tracker/models"
	"github.com/chenashkenazi/food-tracker/services"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the bearer token into a user and aborts with 401
// on any failure: missing header, malformed token, bad signature, expiry,
// or a subject that no longer exists.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
			return
		}

		user, err := auth.ResolveIdentity(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": services.ErrUnauthenticated.Error()})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity the middleware resolved for this request.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(currentUserKey).(*models.User)
}
