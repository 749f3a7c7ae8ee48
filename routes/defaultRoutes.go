package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
