package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/middlewares"
	"github.com/vikash-vatika/vatika-api/models"
	"github.com/vikash-vatika/vatika-api/services"
	"github.com/vikash-vatika/vatika-api/utils"
)

type OrderManager interface {
	CreateOrder(identity *models.Identity, input services.OrderInput) (*models.Order, error)
	GetOrder(identity *models.Identity, id uint) (*models.Order, error)
	ListOrders(identity *models.Identity) ([]models.Order, error)
	UpdateStatus(identity *models.Identity, id uint, status string) (*models.Order, error)
}

type UserFinder interface {
	GetByID(id uint) (*models.User, error)
}

func CreateOrder(service OrderManager, users UserFinder) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input services.OrderInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		order, err := service.CreateOrder(middlewares.CurrentIdentity(ctx), input)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}

		// Confirmation mail is best effort; the order is already committed.
		if user, err := users.GetByID(order.UserID); err == nil {
			if err := utils.SendOrderConfirmationEmail(user, order); err != nil {
				log.Println("Error sending order confirmation email:", err)
			}
		}

		ctx.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

func GetOrders(service OrderManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orders, err := service.ListOrders(middlewares.CurrentIdentity(ctx))
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func GetOrder(service OrderManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		order, err := service.GetOrder(middlewares.CurrentIdentity(ctx), orderID)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"order": order})
	}
}

func UpdateOrderStatus(service OrderManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		order, err := service.UpdateStatus(middlewares.CurrentIdentity(ctx), orderID, input.Status)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"order": order})
	}
}
