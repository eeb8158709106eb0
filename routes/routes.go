package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/controllers"
	"github.com/sonomandeep/Moon/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)

	api := r.Group("/api")

	SetupAuthRoutes(api, authController)

	protected := api.Group("")
	protected.Use(middleware.Auth(db))
	{
		SetupUserRoutes(protected, userController)
		SetupPostRoutes(protected, postController)
	}
}
