package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/services"
	"github.com/sonomandeep/Moon/utils"
	"gorm.io/gorm"
)

type AuthController struct {
	DB          *gorm.DB
	AuthService *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:          db,
		AuthService: services.NewAuthService(db),
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, utils.NewBadRequest(""))
		return
	}

	if fieldErrors := validateRegister(ac.DB, req.Username, req.Email, req.Password); len(fieldErrors) > 0 {
		respondError(c, utils.NewValidationError(fieldErrors))
		return
	}

	user, err := ac.AuthService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, utils.NewBadRequest(""))
		return
	}

	if fieldErrors := validateLogin(req.Username, req.Password); len(fieldErrors) > 0 {
		respondError(c, utils.NewValidationError(fieldErrors))
		return
	}

	user, token, err := ac.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jwtToken": token,
		"user":     user,
	})
}
