package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/controllers"
	"github.com/vikash-vatika/vatika-api/middlewares"
)

func AuthRoutes(server *gin.Engine, users controllers.UserStore) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup(users))
		auth.POST("/login", controllers.Login(users))
		auth.GET("/profile", middlewares.RequireAuth(), controllers.GetProfile(users))
	}
}
