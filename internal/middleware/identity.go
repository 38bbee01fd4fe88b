package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beheryahmed1991/subscription-tracker/internal/user"
)

const identityKey = "identity"

// Identity attaches u to every request. Handlers read it back with CurrentUser
// instead of reaching for process-wide state.
func Identity(u user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, u)
		c.Next()
	}
}

// CurrentUser returns the identity attached by Identity.
func CurrentUser(c *gin.Context) (user.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return user.User{}, false
	}
	u, ok := v.(user.User)
	return u, ok
}

// MustUser is CurrentUser that answers 401 and aborts when no identity is set.
func MustUser(c *gin.Context) (user.User, bool) {
	u, ok := CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no identity"})
	}
	return u, ok
}
