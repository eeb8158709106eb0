package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/middleware"
	"github.com/sonomandeep/Moon/services"
	"github.com/sonomandeep/Moon/utils"
	"gorm.io/gorm"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{UserService: services.NewUserService(db)}
}

type FollowRequest struct {
	RecipientID uint `json:"recipientId" binding:"required"`
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.UserService.GetUsers(middleware.GetPagination(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.UserService.GetUserByID(middleware.GetID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	var patch services.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, utils.NewBadRequest(""))
		return
	}

	user, err := uc.UserService.UpdateUser(middleware.GetID(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.UserService.DeleteUser(middleware.GetID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) FollowUser(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, utils.NewBadRequest(""))
		return
	}

	actor := utils.GetUser(c)
	if err := uc.UserService.FollowUser(actor.ID, req.RecipientID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) UnfollowUser(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, utils.NewBadRequest(""))
		return
	}

	actor := utils.GetUser(c)
	if err := uc.UserService.UnfollowUser(actor.ID, req.RecipientID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
