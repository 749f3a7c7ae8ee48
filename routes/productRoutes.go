package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/controllers"
	"github.com/vikash-vatika/vatika-api/middlewares"
	"github.com/vikash-vatika/vatika-api/policies"
)

func ProductRoutes(server *gin.Engine, products controllers.ProductProvider, images controllers.ImageAttacher, uploader controllers.FileUploader) {
	server.GET("/products", controllers.GetProducts(products))
	server.GET("/products/featured", controllers.GetFeaturedProducts(products))
	server.GET("/products/:id", controllers.GetProduct(products))
	server.POST("/products",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionCreate, policies.ResourceProduct),
		controllers.CreateProduct(products))
	server.PUT("/products/:id",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionUpdate, policies.ResourceProduct),
		controllers.UpdateProduct(products))
	server.DELETE("/products/:id",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionDelete, policies.ResourceProduct),
		controllers.DeleteProduct(products))
	server.POST("/products/:id/images",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionCreate, policies.ResourceProduct),
		controllers.UploadProductImages(products, images, uploader))
}
