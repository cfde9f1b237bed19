package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emmavarela/invitados-server/controllers"
	"github.com/emmavarela/invitados-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/google", controllers.GoogleLogin)
			auth.GET("/validar", controllers.ValidarToken)
		}

		// Rutas públicas: el token de la invitación es la única credencial.
		invitados := api.Group("/invitados")
		{
			invitados.GET("/:token", controllers.ObtenerInvitado)
			invitados.POST("/:token/confirmar", middleware.RateLimitConfirmacion(), controllers.ConfirmarAsistencia)
			invitados.POST("/:token/rechazar", middleware.RateLimitConfirmacion(), controllers.RechazarAsistencia)

			invitados.GET("/:token/acompanantes", controllers.ListarAcompanantes)
			invitados.POST("/:token/acompanantes", controllers.CrearAcompanante)
			invitados.PUT("/:token/acompanantes/:id", controllers.ActualizarAcompanante)
			invitados.DELETE("/:token/acompanantes/:id", controllers.EliminarAcompanante)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthJWT())
		{
			admin.GET("/invitados", controllers.ListarInvitados)
			admin.GET("/estadisticas", controllers.ObtenerEstadisticas)
			admin.POST("/invitados", controllers.CrearInvitado)
			admin.POST("/invitados/lote", controllers.CrearInvitadosLote)
			admin.PUT("/invitados/:id", controllers.ActualizarInvitado)
			admin.DELETE("/invitados/:id", controllers.EliminarInvitado)
			admin.DELETE("/invitados", controllers.EliminarTodosLosInvitados)

			admin.POST("/invitados/:id/whatsapp", controllers.EnviarWhatsApp)
			admin.POST("/whatsapp/masivo", controllers.EnviarWhatsAppMasivo)
			admin.POST("/whatsapp/reenviar", controllers.ReenviarWhatsAppFallidos)

			admin.POST("/excel/upload", controllers.UploadExcel)
			admin.GET("/excel/plantilla", controllers.PlantillaExcel)

			admin.POST("/exportaciones", controllers.CreateExport)
			admin.GET("/exportaciones/:job_id", controllers.GetExport)
		}
	}
}
