package routes

import (
	"campus_hop/internal/controllers"
	"campus_hop/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	group := r.Group("/auth")
	{
		group.POST("/signup", auth.Signup)
		group.POST("/login", auth.Login)
		group.POST("/logout", middleware.RequireAuth(), auth.Logout)
	}

	profile := r.Group("/profile")
	profile.Use(middleware.RequireAuth())
	{
		profile.GET("", auth.GetProfile)
		profile.PATCH("", auth.UpdateProfile)
	}
}
