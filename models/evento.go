package models

import (
	"fmt"
	"time"
)

// ConfirmacionEvento agrupa los datos fijos del evento que acompañan cada
// invitación enviada.
type ConfirmacionEvento struct {
	Titulo             string
	Fecha              time.Time
	Ubicacion          string
	DuracionAproximada string
	CodigoVestimenta   string
	NotaEspecial       string
}

var diasSemana = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var meses = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

// FechaFormateada devuelve la fecha en castellano, p. ej.
// "sábado 6 de septiembre de 2025, 19:00 hs".
func (e ConfirmacionEvento) FechaFormateada() string {
	return fmt.Sprintf("%s %d de %s de %d, %02d:%02d hs",
		diasSemana[e.Fecha.Weekday()], e.Fecha.Day(), meses[e.Fecha.Month()-1],
		e.Fecha.Year(), e.Fecha.Hour(), e.Fecha.Minute())
}
