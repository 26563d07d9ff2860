package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/claudiolibanez/fullstack-week-barber/internal/config"
)

const (
	ContextUserID       = "userID"
	ContextBarbershopID = "barbershopID"
	ContextUserRole     = "userRole"
)

// AuthMiddleware valida o bearer token emitido pelo provedor de identidade
// e injeta o id do usuário no contexto. O core nunca lê sessão ambiente:
// o id segue como argumento explícito para os use cases.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserID, userID)

		// claims de dono (ausentes em tokens de cliente)
		if role, ok := claims["role"].(string); ok {
			c.Set(ContextUserRole, role)
		}
		if shopID, ok := claims["barbershopId"].(float64); ok {
			c.Set(ContextBarbershopID, uint(shopID))
		}

		c.Next()
	}
}

// RequireOwner restringe a rota a tokens de dono vinculados a uma barbearia.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if role != "owner" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "owner_only"})
			return
		}

		if _, ok := c.Get(ContextBarbershopID); !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing_barbershop"})
			return
		}

		c.Next()
	}
}
