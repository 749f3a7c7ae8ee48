package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Vikash Vatika API 🌸.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- GET "/auth/profile" - Get the authenticated user's profile

CATEGORY
- GET "/categories" - Get all categories
- GET "/categories/{slug}" - Get category by slug
- POST "/categories" - Create a category (admin)
- PUT "/categories/{slug}" - Update a category (admin)
- DELETE "/categories/{slug}" - Delete a category (admin)

PRODUCT
- GET "/products" - Get all products
- GET "/products/featured" - Get featured products
- GET "/products/{id}" - Get product by ID
- POST "/products" - Create a product (admin)
- PUT "/products/{id}" - Update a product (admin)
- DELETE "/products/{id}" - Delete a product (admin)
- POST "/products/{id}/images" - Upload product images (admin, multipart)

GALLERY
- GET "/gallery" - Get all gallery images
- GET "/gallery/featured" - Get featured gallery images
- GET "/gallery/by-category?category_id={id}" - Get gallery images for a category
- GET "/gallery/{id}" - Get gallery image by ID
- POST "/gallery" - Add a gallery image (admin, multipart)
- PUT "/gallery/{id}" - Update a gallery image (admin)
- DELETE "/gallery/{id}" - Delete a gallery image (admin)

ORDER
- POST "/orders" - Place a new order
- GET "/orders" - Get your orders (admins see all)
- GET "/orders/{id}" - Get order by ID (owner or admin)
- PATCH "/orders/{id}" - Update order status (owner or admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
