package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandadoInvitadosSerializaPorInvitado(t *testing.T) {
	c := NuevoCandadoInvitados()

	contador := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			liberar := c.Bloquear("inv-1")
			defer liberar()
			contador++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, contador)
}

func TestCandadoInvitadosLiberaEntradasSinUso(t *testing.T) {
	c := NuevoCandadoInvitados()

	liberarA := c.Bloquear("inv-1")
	liberarB := c.Bloquear("inv-2")
	liberarA()
	liberarB()

	c.mu.Lock()
	assert.Empty(t, c.candados)
	c.mu.Unlock()

	// Un invitado ya liberado se puede volver a bloquear sin residuos.
	liberar := c.Bloquear("inv-1")
	liberar()

	c.mu.Lock()
	assert.Empty(t, c.candados)
	c.mu.Unlock()
}
