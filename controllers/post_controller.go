package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/middleware"
	"github.com/sonomandeep/Moon/services"
	"github.com/sonomandeep/Moon/utils"
	"gorm.io/gorm"
)

type PostController struct {
	PostService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{PostService: services.NewPostService(db)}
}

type CreatePostRequest struct {
	Description string `json:"description"`
}

func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.PostService.GetPosts(middleware.GetPagination(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	post, err := pc.PostService.GetPostByID(middleware.GetID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, utils.NewBadRequest(""))
		return
	}

	if strings.TrimSpace(req.Description) == "" {
		respondError(c, utils.NewValidationError([]utils.FieldError{
			{Msg: "You must pass a description.", Param: "description"},
		}))
		return
	}

	actor := utils.GetUser(c)
	post, err := pc.PostService.CreatePost(actor.ID, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	var patch services.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, utils.NewBadRequest(""))
		return
	}

	actor := utils.GetUser(c)
	post, err := pc.PostService.UpdatePost(actor.ID, middleware.GetID(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	actor := utils.GetUser(c)
	if err := pc.PostService.DeletePost(actor.ID, middleware.GetID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *PostController) LikePost(c *gin.Context) {
	actor := utils.GetUser(c)
	if err := pc.PostService.LikePost(actor.ID, middleware.GetID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
