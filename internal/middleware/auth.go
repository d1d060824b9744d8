package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/armariolabs/armario-api/internal/config"
)

const ContextUserID = "userID"

// OptionalAuth no exige token: si viene un Bearer válido deja el id del
// usuario en el contexto y los handlers pueden aplicar chequeos de
// propiedad; si no viene ninguno, la petición sigue con el contrato abierto
// original. Un token presente pero inválido sí se rechaza.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error_code": "invalid_authorization_header",
				"message":    "Cabecera de autorización inválida",
			})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error_code": "invalid_token",
				"message":    "Token inválido",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error_code": "invalid_token_claims",
				"message":    "Token inválido",
			})
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error_code": "invalid_token_payload",
				"message":    "Token inválido",
			})
			return
		}

		c.Set(ContextUserID, uint(sub))
		c.Next()
	}
}

// AuthUserID devuelve el id autenticado si la petición traía token.
func AuthUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
