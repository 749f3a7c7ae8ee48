package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vikash-vatika/vatika-api/models"
)

const identityKey = "identity"

// RequireAuth validates the bearer token and stores the verified identity in
// the request context. Requests without a valid token never reach the
// handler.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)

		SetIdentity(ctx, &models.Identity{
			UserID:   uint(userID),
			Username: username,
			Role:     role,
		})
		ctx.Next()
	}
}

func SetIdentity(ctx *gin.Context, identity *models.Identity) {
	ctx.Set(identityKey, identity)
}

// CurrentIdentity returns the identity stored by RequireAuth, or nil for an
// anonymous request.
func CurrentIdentity(ctx *gin.Context) *models.Identity {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}
