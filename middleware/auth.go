package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/models"
	"github.com/sonomandeep/Moon/services"
	"github.com/sonomandeep/Moon/utils"
	"gorm.io/gorm"
)

// Auth verifies the bearer token and loads the user it was issued for. The
// token must also match the one stored on the user record, so logging in
// elsewhere invalidates sessions opened before.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWith(c, utils.NewUnauthenticated("You must pass an authorization token"))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := services.VerifyToken(token)
		if err != nil {
			abortWith(c, utils.NewUnauthenticated("You must pass a valid token"))
			return
		}

		var user models.User
		if err := db.Where("id = ? AND jwt_token = ?", userID, token).First(&user).Error; err != nil {
			abortWith(c, utils.NewUnauthenticated("Unauthorized"))
			return
		}

		c.Set(string(utils.UserContextKey), &user)
		c.Next()
	}
}

func abortWith(c *gin.Context, err *utils.HTTPError) {
	c.AbortWithStatusJSON(err.Status, err)
}
