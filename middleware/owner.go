package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/utils"
)

// OwnerOnly restricts a /users/:id route to the authenticated user itself.
// Must run after Auth and ValidateID.
func OwnerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			abortWith(c, utils.NewUnauthenticated(""))
			return
		}

		if GetID(c) != user.ID {
			abortWith(c, utils.NewUnauthorized(""))
			return
		}

		c.Next()
	}
}
