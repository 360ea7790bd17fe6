package middleware

import (
	"net/http"
	"strings"

	"frontdoor_backend/internal/auth"
	"frontdoor_backend/internal/logger"
	"frontdoor_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Сохраняем claims в контекст: wallet - адрес вызывающего
		// для всех доменных операций
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("wallet", claims.Wallet)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		ctx = logger.WithWallet(ctx, claims.Wallet)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware - middleware ограничения по ролям
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok || models.UserRole(roleStr) != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetWallet извлекает адрес кошелька вызывающего из контекста
func GetWallet(c *gin.Context) string {
	wallet, exists := c.Get("wallet")
	if !exists {
		return ""
	}
	w, ok := wallet.(string)
	if !ok {
		return ""
	}
	return w
}
