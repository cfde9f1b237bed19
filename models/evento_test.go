package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFechaFormateada(t *testing.T) {
	evento := ConfirmacionEvento{
		Fecha: time.Date(2025, 9, 6, 19, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "sábado 6 de septiembre de 2025, 19:00 hs", evento.FechaFormateada())
}
