package controllers

import (
	"regexp"
	"strings"

	"github.com/sonomandeep/Moon/models"
	"github.com/sonomandeep/Moon/utils"
	"gorm.io/gorm"
)

var (
	alphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailPattern        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// validateRegister collects every field error for a registration request,
// including database-backed uniqueness checks on username and email.
func validateRegister(db *gorm.DB, username, email, password string) []utils.FieldError {
	var fieldErrors []utils.FieldError

	username = strings.ToLower(strings.TrimSpace(username))
	if len(username) < 3 || len(username) > 32 {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "The username should have at least 3 characters", Param: "username",
		})
	} else if !alphanumericPattern.MatchString(username) {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "Invalid value", Param: "username",
		})
	} else if exists(db, "username", username) {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "This username is already taken", Param: "username",
		})
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "You should pass a valid email", Param: "email",
		})
	} else if exists(db, "email", email) {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "This email address is already taken", Param: "email",
		})
	}

	password = strings.TrimSpace(password)
	if len(password) < 6 {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "The password should have at least 6 characters", Param: "password",
		})
	} else if !alphanumericPattern.MatchString(password) {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "The password should have only alphanumerical characters", Param: "password",
		})
	}

	return fieldErrors
}

func exists(db *gorm.DB, column, value string) bool {
	var count int64
	db.Model(&models.User{}).Where(column+" = ?", value).Count(&count)
	return count > 0
}

// validateLogin checks the credential fields are present.
func validateLogin(username, password string) []utils.FieldError {
	var fieldErrors []utils.FieldError

	if strings.TrimSpace(username) == "" {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "You must pass a username", Param: "username",
		})
	}
	if strings.TrimSpace(password) == "" {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Msg: "You must pass a password", Param: "password",
		})
	}

	return fieldErrors
}
