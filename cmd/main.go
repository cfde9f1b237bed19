package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/emmavarela/invitados-server/config"
	"github.com/emmavarela/invitados-server/controllers"
	"github.com/emmavarela/invitados-server/repository"
	"github.com/emmavarela/invitados-server/routes"
	"github.com/emmavarela/invitados-server/services"
)

func main() {
	// Conexión a DB + AutoMigrate + datos del evento
	config.ConnectDB()
	config.CargarEvento()

	// Repositorios y services
	invitadoRepo := repository.NewInvitadoRepository(config.DB)
	acompananteRepo := repository.NewAcompananteRepository(config.DB)

	candados := services.NuevoCandadoInvitados()
	eventos := services.NuevoPublicadorEventos(64)

	confirmaciones := services.NuevoConfirmacionService(invitadoRepo, acompananteRepo, eventos, candados, config.ContactoOrganizador)
	acompanantes := services.NuevoAcompananteService(invitadoRepo, acompananteRepo, candados, config.ContactoOrganizador)
	invitados := services.NuevoInvitadoService(invitadoRepo, acompananteRepo, candados, config.FechaLimiteEdicion)

	whatsapp := services.NuevoWhatsAppCloud(
		os.Getenv("WHATSAPP_TOKEN"),
		os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		os.Getenv("WHATSAPP_CODIGO_PAIS"),
	)
	envios := services.NuevoEnvioService(invitadoRepo, whatsapp, config.FrontendURL, config.Evento)

	controllers.Init(invitados, confirmaciones, acompanantes, envios)

	// Suscriptor de eventos de dominio: por ahora solo deja registro de cada
	// disposición final.
	go func() {
		for evento := range eventos.Eventos() {
			log.Printf("invitación %s: %s (%s)", evento.Tipo, evento.Invitado.Nombre, evento.Invitado.Token)
		}
	}()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origin == "http://localhost:5173" || origin == config.FrontendURL
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Invitados server is running")
	})

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port %s\n", port)
	r.Run(":" + port)
}
