package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmavarela/invitados-server/services"
)

// GET /api/invitados/:token
func ObtenerInvitado(c *gin.Context) {
	invitado, acompanantes, err := invitadoService.ObtenerPorToken(c.Param("token"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": proyeccionInvitado(invitado, acompanantes)})
}

type confirmarReq struct {
	Mensaje      string                      `json:"mensaje"`
	Acompanantes []services.AcompananteNuevo `json:"acompanantes"`
}

// POST /api/invitados/:token/confirmar
func ConfirmarAsistencia(c *gin.Context) {
	var req confirmarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	invitado, acompanantes, err := confirmacionService.ResponderInvitacion(c.Param("token"), true, req.Mensaje, req.Acompanantes)
	if err != nil {
		responderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asistencia confirmada",
		"data":    proyeccionInvitado(invitado, acompanantes),
	})
}

type rechazarReq struct {
	Mensaje string `json:"mensaje"`
}

// POST /api/invitados/:token/rechazar
func RechazarAsistencia(c *gin.Context) {
	var req rechazarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	invitado, acompanantes, err := confirmacionService.ResponderInvitacion(c.Param("token"), false, req.Mensaje, nil)
	if err != nil {
		responderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asistencia rechazada",
		"data":    proyeccionInvitado(invitado, acompanantes),
	})
}
