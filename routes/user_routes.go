package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/controllers"
	"github.com/sonomandeep/Moon/middleware"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	users := protected.Group("/users")
	{
		users.GET("", middleware.Paginate(), userController.GetUsers)
		users.GET("/:id", middleware.ValidateID(), userController.GetUser)
		users.PATCH("/:id", middleware.ValidateID(), middleware.OwnerOnly(), userController.UpdateUser)
		users.DELETE("/:id", middleware.ValidateID(), middleware.OwnerOnly(), userController.DeleteUser)

		users.POST("/follow", userController.FollowUser)
		users.POST("/unfollow", userController.UnfollowUser)
	}
}
