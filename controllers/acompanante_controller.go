package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/invitados/:token/acompanantes
func ListarAcompanantes(c *gin.Context) {
	acompanantes, err := acompananteService.Listar(c.Param("token"))
	if err != nil {
		responderError(c, err)
		return
	}

	lista := make([]gin.H, 0, len(acompanantes))
	for _, a := range acompanantes {
		lista = append(lista, proyeccionAcompanante(a))
	}
	c.JSON(http.StatusOK, gin.H{"data": lista})
}

type acompananteReq struct {
	NombreCompleto string `json:"nombre_completo" binding:"required"`
	Telefono       string `json:"telefono"`
}

// POST /api/invitados/:token/acompanantes
func CrearAcompanante(c *gin.Context) {
	var req acompananteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	acompanante, err := acompananteService.Crear(c.Param("token"), req.NombreCompleto, req.Telefono)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Acompañante agregado",
		"data":    proyeccionAcompanante(*acompanante),
	})
}

// PUT /api/invitados/:token/acompanantes/:id
func ActualizarAcompanante(c *gin.Context) {
	var req acompananteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	acompanante, err := acompananteService.Actualizar(c.Param("token"), c.Param("id"), req.NombreCompleto, req.Telefono)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Acompañante actualizado",
		"data":    proyeccionAcompanante(*acompanante),
	})
}

// DELETE /api/invitados/:token/acompanantes/:id
func EliminarAcompanante(c *gin.Context) {
	if err := acompananteService.Eliminar(c.Param("token"), c.Param("id")); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Acompañante eliminado"})
}
