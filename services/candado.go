package services

import "sync"

// CandadoInvitados serializa las operaciones de escritura por invitado, para
// que dos envíos simultáneos del mismo token (dos pestañas del navegador) no
// dupliquen acompañantes ni completen la confirmación con un conteo viejo.
// Cada entrada lleva el conteo de operaciones en vuelo y se borra al llegar a
// cero, así el mapa solo contiene invitados con trabajo activo.
type CandadoInvitados struct {
	mu       sync.Mutex
	candados map[string]*candadoConUso
}

type candadoConUso struct {
	mu   sync.Mutex
	usos int
}

func NuevoCandadoInvitados() *CandadoInvitados {
	return &CandadoInvitados{candados: make(map[string]*candadoConUso)}
}

// Bloquear toma el candado del invitado y devuelve la función que lo libera.
func (c *CandadoInvitados) Bloquear(invitadoID string) func() {
	c.mu.Lock()
	candado, ok := c.candados[invitadoID]
	if !ok {
		candado = &candadoConUso{}
		c.candados[invitadoID] = candado
	}
	candado.usos++
	c.mu.Unlock()

	candado.mu.Lock()
	return func() {
		candado.mu.Unlock()
		c.mu.Lock()
		candado.usos--
		if candado.usos == 0 {
			delete(c.candados, invitadoID)
		}
		c.mu.Unlock()
	}
}
