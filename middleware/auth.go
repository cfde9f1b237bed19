package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emmavarela/invitados-server/utils"
)

// Clave de contexto con los claims del admin autenticado.
const CtxAdmin = "admin"

// AuthJWT valida Authorization: Bearer <token> y exige rol de admin. El panel
// es de un solo usuario, no hay cuentas que buscar en la base.
func AuthJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Falta el header Authorization"})
			return
		}
		rawToken := strings.TrimSpace(authHeader[7:])

		claims, err := utils.VerifyToken(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido o expirado"})
			return
		}

		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Solo para administradores"})
			return
		}

		c.Set(CtxAdmin, claims)
		c.Next()
	}
}
