package users_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	users_models "trackdesk/internal/features/users/models"
	users_services "trackdesk/internal/features/users/services"
)

// AuthMiddleware validates the JWT token and adds the user to the context
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			ctx.Abort()
			return
		}

		// Remove "Bearer " prefix if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Set("token", token)
		ctx.Next()
	}
}

// GetUserFromContext helper function to extract user from gin context
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}

// GetTokenFromContext returns the raw token the request authenticated with
func GetTokenFromContext(ctx *gin.Context) (string, bool) {
	tokenInterface, exists := ctx.Get("token")
	if !exists {
		return "", false
	}

	token, ok := tokenInterface.(string)

	return token, ok
}
