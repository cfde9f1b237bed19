package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmavarela/invitados-server/services"
)

// GET /api/admin/invitados
func ListarInvitados(c *gin.Context) {
	invitados, err := invitadoService.Listar()
	if err != nil {
		responderError(c, err)
		return
	}

	lista := make([]gin.H, 0, len(invitados))
	for i := range invitados {
		lista = append(lista, proyeccionInvitado(&invitados[i], invitados[i].Acompanantes))
	}
	c.JSON(http.StatusOK, gin.H{"data": lista, "total": len(lista)})
}

// GET /api/admin/estadisticas
func ObtenerEstadisticas(c *gin.Context) {
	stats, err := invitadoService.Estadisticas()
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// POST /api/admin/invitados
func CrearInvitado(c *gin.Context) {
	var req services.CrearInvitadoDatos
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	invitado, err := invitadoService.Crear(req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Invitado creado",
		"data":    proyeccionInvitado(invitado, nil),
	})
}

type loteReq struct {
	Invitados []services.CrearInvitadoDatos `json:"invitados" binding:"required"`
}

// POST /api/admin/invitados/lote — una fila inválida no corta el lote.
func CrearInvitadosLote(c *gin.Context) {
	var req loteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	creados, errores := invitadoService.CrearEnLote(req.Invitados)

	lista := make([]gin.H, 0, len(creados))
	for i := range creados {
		lista = append(lista, proyeccionInvitado(&creados[i], nil))
	}
	c.JSON(http.StatusCreated, gin.H{
		"guardados": len(creados),
		"errores":   errores,
		"data":      lista,
	})
}

// PUT /api/admin/invitados/:id
func ActualizarInvitado(c *gin.Context) {
	var req services.ActualizarInvitadoDatos
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	invitado, err := invitadoService.Actualizar(c.Param("id"), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Invitado actualizado",
		"data":    proyeccionInvitado(invitado, nil),
	})
}

// DELETE /api/admin/invitados/:id
func EliminarInvitado(c *gin.Context) {
	if err := invitadoService.Eliminar(c.Param("id")); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitado eliminado"})
}

// DELETE /api/admin/invitados — borra todo el listado, usado para recargar
// el Excel desde cero.
func EliminarTodosLosInvitados(c *gin.Context) {
	if err := invitadoService.EliminarTodos(); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Se eliminaron todos los invitados"})
}
