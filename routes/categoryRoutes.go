package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/controllers"
	"github.com/vikash-vatika/vatika-api/middlewares"
	"github.com/vikash-vatika/vatika-api/policies"
)

func CategoryRoutes(server *gin.Engine, categories controllers.CategoryProvider) {
	server.GET("/categories", controllers.GetCategories(categories))
	server.GET("/categories/:slug", controllers.GetCategory(categories))
	server.POST("/categories",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionCreate, policies.ResourceCategory),
		controllers.CreateCategory(categories))
	server.PUT("/categories/:slug",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionUpdate, policies.ResourceCategory),
		controllers.UpdateCategory(categories))
	server.DELETE("/categories/:slug",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionDelete, policies.ResourceCategory),
		controllers.DeleteCategory(categories))
}
