package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/emmavarela/invitados-server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Datos del evento y reglas de edición, cargados una vez al arrancar.
var (
	FechaLimiteEdicion  time.Time
	ContactoOrganizador string
	FrontendURL         string
	Evento              models.ConfirmacionEvento
)

// ConnectDB abre la conexión a PostgreSQL y migra las tablas.
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Argentina/Buenos_Aires",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Invitado{},
		&models.Acompanante{},
		&models.ExportJob{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	DB = db
	log.Println("Connected to PostgreSQL & migrated successfully")
}

// CargarEvento lee la configuración del evento desde el entorno, con los
// valores de la graduación como default.
func CargarEvento() {
	FechaLimiteEdicion = fechaDesdeEnv("FECHA_LIMITE_EDICION", time.Date(2025, 9, 1, 23, 59, 59, 0, time.UTC))

	ContactoOrganizador = os.Getenv("CONTACTO_ORGANIZADOR")
	if ContactoOrganizador == "" {
		ContactoOrganizador = "Emma: 1138427868"
	}

	FrontendURL = os.Getenv("FRONTEND_URL")
	if FrontendURL == "" {
		FrontendURL = "http://localhost:5173"
	}

	Evento = models.ConfirmacionEvento{
		Titulo:             "Invitación a Evento Graduación",
		Fecha:              fechaDesdeEnv("FECHA_EVENTO", time.Date(2025, 9, 6, 19, 0, 0, 0, time.UTC)),
		Ubicacion:          "Salón de Eventos Varela II",
		DuracionAproximada: "Aproximadamente 7 horas",
		CodigoVestimenta:   "Elegante Sport",
		NotaEspecial:       "Por motivo de las elecciones, el servicio de alcohol finalizará a las 12 de la noche.",
	}
}

func fechaDesdeEnv(clave string, porDefecto time.Time) time.Time {
	valor := os.Getenv(clave)
	if valor == "" {
		return porDefecto
	}
	t, err := time.Parse(time.RFC3339, valor)
	if err != nil {
		log.Printf("valor inválido en %s (%q), se usa el default: %v", clave, valor, err)
		return porDefecto
	}
	return t
}
