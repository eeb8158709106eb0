package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/utils"
)

const paginationContextKey = "pagination"

// Paginate attaches bounded limit/skip values parsed from the query string.
func Paginate() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := utils.ParsePagination(c.Query("limit"), c.Query("skip"))
		c.Set(paginationContextKey, p)
		c.Next()
	}
}

// GetPagination returns the values set by Paginate, or the defaults when
// the middleware did not run.
func GetPagination(c *gin.Context) utils.Pagination {
	value, exists := c.Get(paginationContextKey)
	if !exists {
		return utils.ParsePagination("", "")
	}
	return value.(utils.Pagination)
}
