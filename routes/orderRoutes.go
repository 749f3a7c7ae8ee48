package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/controllers"
	"github.com/vikash-vatika/vatika-api/middlewares"
)

func OrderRoutes(server *gin.Engine, service controllers.OrderManager, users controllers.UserFinder) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder(service, users))
		orders.GET("", controllers.GetOrders(service))
		orders.GET("/:id", controllers.GetOrder(service))
		orders.PATCH("/:id", controllers.UpdateOrderStatus(service))
	}
}
