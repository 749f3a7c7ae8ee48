package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/policies"
	"github.com/vikash-vatika/vatika-api/repositories"
	"github.com/vikash-vatika/vatika-api/services"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondWithServiceError maps layer errors onto client-facing responses.
// Anything unrecognized is a storage or programming failure: it is logged
// and reported as a generic server error, never leaked to the client.
func respondWithServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, policies.ErrAuthentication):
		sendErrorResponse(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, policies.ErrAuthorization):
		sendErrorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, repositories.ErrCategoryNotFound),
		errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, repositories.ErrGalleryImageNotFound),
		errors.Is(err, repositories.ErrOrderNotFound),
		errors.Is(err, repositories.ErrUserNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrSlugTaken):
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, repositories.ErrEmptyImageBatch),
		errors.Is(err, services.ErrNoOrderItems),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidEventDate):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		log.Println("Unexpected error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
