package services

import (
	"log"
	"time"

	"github.com/emmavarela/invitados-server/models"
)

type TipoConfirmacion string

const (
	TipoConfirmado TipoConfirmacion = "confirmado"
	TipoRechazado  TipoConfirmacion = "rechazado"
)

// InvitacionConfirmada es el evento de dominio que emite el flujo de
// confirmación con la disposición final. El núcleo no envía mensajes; quien
// quiera notificar se suscribe al canal.
type InvitacionConfirmada struct {
	Invitado   models.Invitado
	Tipo       TipoConfirmacion
	OcurridoEn time.Time
}

type PublicadorEventos struct {
	eventos chan InvitacionConfirmada
}

func NuevoPublicadorEventos(buffer int) *PublicadorEventos {
	return &PublicadorEventos{eventos: make(chan InvitacionConfirmada, buffer)}
}

// Publicar nunca bloquea el flujo de confirmación: si no hay lugar en el
// buffer, el evento se descarta con un log.
func (p *PublicadorEventos) Publicar(evento InvitacionConfirmada) {
	select {
	case p.eventos <- evento:
	default:
		log.Printf("publicador de eventos saturado, se descarta evento %s de %s", evento.Tipo, evento.Invitado.Nombre)
	}
}

// Eventos expone el canal de solo lectura para los suscriptores.
func (p *PublicadorEventos) Eventos() <-chan InvitacionConfirmada {
	return p.eventos
}
