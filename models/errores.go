package models

import "errors"

// Errores de dominio. Los controllers los traducen a códigos HTTP con
// errors.Is; el resto (fallos de DB, etc.) se propaga sin tocar.
var (
	// ErrNoEncontrado: el token o id no resuelve a un invitado/acompañante.
	ErrNoEncontrado = errors.New("no encontrado")

	// ErrEstadoInvalido: transición ilegal (re-confirmar, re-rechazar,
	// completar algo que no está incompleto).
	ErrEstadoInvalido = errors.New("estado inválido")

	// ErrCupoExcedido: se superaría el máximo de acompañantes.
	ErrCupoExcedido = errors.New("cupo de acompañantes excedido")

	// ErrVentanaCerrada: mutación posterior a la fecha límite de edición.
	ErrVentanaCerrada = errors.New("ventana de edición cerrada")

	// ErrSinPermiso: el acompañante no pertenece al invitado resuelto.
	ErrSinPermiso = errors.New("sin permiso")

	// ErrValidacion: nombre/teléfono/token/cantidad malformados.
	ErrValidacion = errors.New("datos inválidos")
)
