package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/initializers"
	"github.com/vikash-vatika/vatika-api/repositories"
	"github.com/vikash-vatika/vatika-api/routes"
	"github.com/vikash-vatika/vatika-api/services"
	"github.com/vikash-vatika/vatika-api/utils"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.vikashvatika.com"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	uploader, err := utils.NewUploader(context.Background())
	if err != nil {
		log.Fatal("Failed to configure file storage: ", err)
	}

	users := repositories.NewUserRepository(initializers.DB)
	categories := repositories.NewCategoryRepository(initializers.DB)
	products := repositories.NewProductRepository(initializers.DB)
	images := repositories.NewImageRepository(initializers.DB)
	gallery := repositories.NewGalleryRepository(initializers.DB)
	orders := repositories.NewOrderRepository(initializers.DB)
	orderService := services.NewOrderService(orders, products)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, users)
	routes.CategoryRoutes(server, categories)
	routes.ProductRoutes(server, products, images, uploader)
	routes.GalleryRoutes(server, gallery, uploader)
	routes.OrderRoutes(server, orderService, users)
	server.Run()
}
