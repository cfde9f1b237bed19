package controllers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"github.com/emmavarela/invitados-server/utils"
)

type loginReq struct {
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login — login del panel de administración. Con
// ADMIN_PASSWORD_HASH configurado se compara contra bcrypt; si no, contra
// ADMIN_PASSWORD en texto plano.
func Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Contraseña es requerida"})
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	plano := os.Getenv("ADMIN_PASSWORD")
	if hash == "" && plano == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error de configuración del servidor"})
		return
	}

	valida := false
	if hash != "" {
		valida = utils.CheckPassword(hash, req.Password)
	} else {
		valida = req.Password == plano
	}
	if !valida {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Contraseña incorrecta"})
		return
	}

	emitirSesion(c)
}

type googleLoginReq struct {
	IDToken string `json:"id_token" binding:"required"`
}

// POST /api/auth/google — login alternativo con Google, restringido a los
// correos de ADMIN_EMAILS (separados por coma).
func GoogleLogin(c *gin.Context) {
	var req googleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id_token es requerido"})
		return
	}

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login con Google no configurado"})
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, clientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token de Google inválido"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" || !esEmailAdmin(email) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Este correo no tiene acceso al panel"})
		return
	}

	emitirSesion(c)
}

// GET /api/auth/validar
func ValidarToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Token no proporcionado"})
		return
	}

	claims, err := utils.VerifyToken(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Token inválido o expirado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  gin.H{"is_admin": claims.IsAdmin},
	})
}

func emitirSesion(c *gin.Context) {
	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo generar la sesión"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": 86400,
		"user":       gin.H{"is_admin": true},
	})
}

func esEmailAdmin(email string) bool {
	for _, permitido := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if permitido != "" && strings.EqualFold(strings.TrimSpace(permitido), email) {
			return true
		}
	}
	return false
}
