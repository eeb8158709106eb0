package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sonomandeep/Moon/middleware"
	"github.com/sonomandeep/Moon/utils"
)

// respondError serializes a domain error as {status, message, errors?}.
// Anything that is not an HTTPError becomes a generic 500.
func respondError(c *gin.Context, err error) {
	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Status >= http.StatusInternalServerError {
			logrus.WithField("request_id", c.GetString(middleware.RequestIDHeader)).Error(err)
		}
		c.JSON(httpErr.Status, httpErr)
		return
	}

	logrus.WithField("request_id", c.GetString(middleware.RequestIDHeader)).Error(err)
	c.JSON(http.StatusInternalServerError, utils.HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong",
	})
}
