package models

import (
	"fmt"
	"strings"
)

// EstadoInvitacion es la única fuente de verdad sobre la posición de una
// invitación en el flujo de confirmación.
type EstadoInvitacion string

const (
	EstadoPendiente            EstadoInvitacion = "pendiente"
	EstadoConfirmado           EstadoInvitacion = "confirmado"
	EstadoConfirmadoIncompleto EstadoInvitacion = "confirmado_incompleto"
	EstadoRechazado            EstadoInvitacion = "rechazado"
)

func (e EstadoInvitacion) EsPendiente() bool {
	return e == EstadoPendiente
}

func (e EstadoInvitacion) EsConfirmado() bool {
	return e == EstadoConfirmado
}

func (e EstadoInvitacion) EsConfirmadoIncompleto() bool {
	return e == EstadoConfirmadoIncompleto
}

// EsConfirmadoCompletoOIncompleto cubre ambas variantes de aceptación.
func (e EstadoInvitacion) EsConfirmadoCompletoOIncompleto() bool {
	return e == EstadoConfirmado || e == EstadoConfirmadoIncompleto
}

func (e EstadoInvitacion) EsRechazado() bool {
	return e == EstadoRechazado
}

// EstadoDesdeString parsea un estado recibido de fuera (DB, API).
func EstadoDesdeString(valor string) (EstadoInvitacion, error) {
	switch EstadoInvitacion(strings.ToLower(valor)) {
	case EstadoPendiente:
		return EstadoPendiente, nil
	case EstadoConfirmado:
		return EstadoConfirmado, nil
	case EstadoConfirmadoIncompleto:
		return EstadoConfirmadoIncompleto, nil
	case EstadoRechazado:
		return EstadoRechazado, nil
	default:
		return "", fmt.Errorf("%w: estado de invitación desconocido: %q", ErrValidacion, valor)
	}
}
