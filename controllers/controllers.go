package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emmavarela/invitados-server/models"
	"github.com/emmavarela/invitados-server/services"
)

// Services compartidos por todos los handlers, cableados desde main.
var (
	invitadoService     *services.InvitadoService
	confirmacionService *services.ConfirmacionService
	acompananteService  *services.AcompananteService
	envioService        *services.EnvioService
)

func Init(
	invitados *services.InvitadoService,
	confirmaciones *services.ConfirmacionService,
	acompanantes *services.AcompananteService,
	envios *services.EnvioService,
) {
	invitadoService = invitados
	confirmacionService = confirmaciones
	acompananteService = acompanantes
	envioService = envios
}

// responderError traduce los errores de dominio a códigos HTTP. Cualquier
// otro error es un fallo de infraestructura y sale como 500 sin detalle.
func responderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrEstadoInvalido):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrValidacion), errors.Is(err, models.ErrCupoExcedido):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrVentanaCerrada), errors.Is(err, models.ErrSinPermiso):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor"})
	}
}

func proyeccionAcompanante(a models.Acompanante) gin.H {
	return gin.H{
		"id":              a.ID,
		"invitado_id":     a.InvitadoID,
		"nombre_completo": a.NombreCompleto,
		"telefono":        a.Telefono,
		"fecha_creacion":  a.FechaCreacion,
	}
}

// proyeccionInvitado arma la respuesta completa que consume la página de
// confirmación y el panel.
func proyeccionInvitado(invitado *models.Invitado, acompanantes []models.Acompanante) gin.H {
	lista := make([]gin.H, 0, len(acompanantes))
	for _, a := range acompanantes {
		lista = append(lista, proyeccionAcompanante(a))
	}

	return gin.H{
		"id":                    invitado.ID,
		"nombre":                invitado.Nombre,
		"telefono":              invitado.Telefono,
		"token":                 invitado.Token,
		"estado":                invitado.Estado,
		"mensaje":               invitado.Mensaje,
		"fecha_confirmacion":    invitado.FechaConfirmacion,
		"fecha_creacion":        invitado.FechaCreacion,
		"cantidad_invitaciones": invitado.CantidadInvitaciones,
		"maximo_acompanantes":   invitado.MaximoAcompanantes(),
		"fecha_limite_edicion":  invitado.FechaLimiteEdicion,
		"puede_editar":          invitado.PuedeEditarAcompanantes(time.Now()),
		"whatsapp_enviado":      invitado.WhatsappEnviado,
		"acompanantes":          lista,
	}
}
