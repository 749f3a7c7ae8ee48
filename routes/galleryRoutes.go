package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/controllers"
	"github.com/vikash-vatika/vatika-api/middlewares"
	"github.com/vikash-vatika/vatika-api/policies"
)

func GalleryRoutes(server *gin.Engine, gallery controllers.GalleryProvider, uploader controllers.FileUploader) {
	server.GET("/gallery", controllers.GetGalleryImages(gallery))
	server.GET("/gallery/featured", controllers.GetFeaturedGalleryImages(gallery))
	server.GET("/gallery/by-category", controllers.GetGalleryImagesByCategory(gallery))
	server.GET("/gallery/:id", controllers.GetGalleryImage(gallery))
	server.POST("/gallery",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionCreate, policies.ResourceGallery),
		controllers.CreateGalleryImage(gallery, uploader))
	server.PUT("/gallery/:id",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionUpdate, policies.ResourceGallery),
		controllers.UpdateGalleryImage(gallery))
	server.DELETE("/gallery/:id",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(policies.ActionDelete, policies.ResourceGallery),
		controllers.DeleteGalleryImage(gallery))
}
