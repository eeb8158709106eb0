package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/controllers"
	"github.com/sonomandeep/Moon/middleware"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController) {
	posts := protected.Group("/posts")
	{
		posts.GET("", middleware.Paginate(), postController.GetPosts)
		posts.GET("/:id", middleware.ValidateID(), postController.GetPost)
		posts.POST("", postController.CreatePost)
		posts.PATCH("/:id", middleware.ValidateID(), postController.UpdatePost)
		posts.DELETE("/:id", middleware.ValidateID(), postController.DeletePost)
		posts.POST("/like/:id", middleware.ValidateID(), postController.LikePost)
	}
}
