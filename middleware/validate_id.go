package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/utils"
)

const idContextKey = "validatedID"

// ValidateID rejects routes whose :id parameter is not a well-formed
// identifier, with the same field-error shape validation uses elsewhere.
func ValidateID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			abortWith(c, utils.NewValidationError([]utils.FieldError{
				{Msg: "You must pass a valid id", Param: "id"},
			}))
			return
		}

		c.Set(idContextKey, uint(id))
		c.Next()
	}
}

// GetID returns the identifier parsed by ValidateID.
func GetID(c *gin.Context) uint {
	return c.GetUint(idContextKey)
}
