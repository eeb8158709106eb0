package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/models"
)

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated user placed in the context by the auth
// middleware, or nil when the route is unauthenticated.
func GetUser(c *gin.Context) *models.User {
	value, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if user, ok := value.(*models.User); ok {
		return user
	}
	return nil
}
