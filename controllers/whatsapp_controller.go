package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmavarela/invitados-server/services"
)

// POST /api/admin/invitados/:id/whatsapp — envío individual.
func EnviarWhatsApp(c *gin.Context) {
	resultado, err := envioService.EnviarIndividual(c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resultado})
}

// POST /api/admin/whatsapp/masivo — envío a todos los invitados.
func EnviarWhatsAppMasivo(c *gin.Context) {
	resultados, err := envioService.EnviarMasivo()
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumenEnvios(resultados))
}

// POST /api/admin/whatsapp/reenviar — reintenta los que siguen sin envío.
func ReenviarWhatsAppFallidos(c *gin.Context) {
	resultados, err := envioService.ReenviarFallidos()
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumenEnvios(resultados))
}

func resumenEnvios(resultados []services.ResultadoEnvio) gin.H {
	exitosos := 0
	for _, r := range resultados {
		if r.Exitoso {
			exitosos++
		}
	}
	return gin.H{
		"total":    len(resultados),
		"exitosos": exitosos,
		"fallidos": len(resultados) - exitosos,
		"data":     resultados,
	}
}
