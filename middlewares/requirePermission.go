package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/policies"
)

// RequirePermission gates a route on the access policy. Runs after
// RequireAuth on admin-only routes; ownership-scoped checks live in the
// order service instead, where the owner is known.
func RequirePermission(action policies.Action, resource policies.Resource) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := CurrentIdentity(ctx)
		if err := policies.Authorize(identity, action, resource, 0); err != nil {
			if errors.Is(err, policies.ErrAuthentication) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			} else {
				ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			}
			return
		}
		ctx.Next()
	}
}
