package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Invitado es la raíz del agregado de confirmación. El estado solo se mueve a
// través de los métodos con nombre; nada fuera de este archivo debe escribir
// Estado ni FechaConfirmacion directamente.
type Invitado struct {
	ID                   string           `gorm:"column:id;primaryKey;size:36" json:"id"`
	Token                string           `gorm:"column:token;size:64;uniqueIndex;not null" json:"token"`
	Nombre               string           `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Telefono             string           `gorm:"column:telefono;size:30" json:"telefono,omitempty"`
	Estado               EstadoInvitacion `gorm:"column:estado;size:30;not null;default:'pendiente'" json:"estado"`
	Mensaje              string           `gorm:"column:mensaje;type:text" json:"mensaje,omitempty"`
	FechaConfirmacion    *time.Time       `gorm:"column:fecha_confirmacion" json:"fecha_confirmacion,omitempty"`
	FechaCreacion        time.Time        `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	CantidadInvitaciones int              `gorm:"column:cantidad_invitaciones;not null;default:1" json:"cantidad_invitaciones"`
	FechaLimiteEdicion   time.Time        `gorm:"column:fecha_limite_edicion;not null" json:"fecha_limite_edicion"`
	WhatsappEnviado      bool             `gorm:"column:whatsapp_enviado;not null;default:false" json:"whatsapp_enviado"`
	FechaEnvioWhatsapp   *time.Time       `gorm:"column:fecha_envio_whatsapp" json:"fecha_envio_whatsapp,omitempty"`
	IntentosEnvio        int              `gorm:"column:intentos_envio;not null;default:0" json:"intentos_envio"`

	Acompanantes []Acompanante `gorm:"foreignKey:InvitadoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Invitado) TableName() string {
	return "invitados"
}

// NuevoInvitado crea un invitado pendiente con token recién generado.
func NuevoInvitado(nombre, telefono string, cantidadInvitaciones int, mensaje string, fechaLimiteEdicion time.Time) (*Invitado, error) {
	contacto, err := NuevoDatosContacto(nombre, telefono)
	if err != nil {
		return nil, err
	}
	if cantidadInvitaciones < 1 {
		return nil, fmt.Errorf("%w: la cantidad de invitaciones debe ser mayor a 0", ErrValidacion)
	}
	token, err := GenerarToken()
	if err != nil {
		return nil, err
	}
	return &Invitado{
		ID:                   uuid.NewString(),
		Token:                token.Valor(),
		Nombre:               contacto.Nombre(),
		Telefono:             contacto.Telefono(),
		Estado:               EstadoPendiente,
		Mensaje:              mensaje,
		CantidadInvitaciones: cantidadInvitaciones,
		FechaLimiteEdicion:   fechaLimiteEdicion,
	}, nil
}

// DatosContacto reconstruye el value object a partir de las columnas planas.
func (i *Invitado) DatosContacto() DatosContacto {
	return DatosContacto{nombre: i.Nombre, telefono: i.Telefono}
}

// MaximoAcompanantes: una invitación siempre cubre al titular.
func (i *Invitado) MaximoAcompanantes() int {
	return i.CantidadInvitaciones - 1
}

func (i *Invitado) NecesitaAcompanantes() bool {
	return i.CantidadInvitaciones > 1
}

// PuedeEditarAcompanantes indica si la ventana de edición sigue abierta.
func (i *Invitado) PuedeEditarAcompanantes(ahora time.Time) bool {
	return !ahora.After(i.FechaLimiteEdicion)
}

// ConfirmarAsistencia acepta la invitación. Con una sola invitación pasa
// directo a confirmado; con más, queda confirmado_incompleto hasta registrar
// todos los acompañantes. Un mensaje vacío no pisa el anterior.
func (i *Invitado) ConfirmarAsistencia(mensaje string) error {
	if i.Estado.EsConfirmadoCompletoOIncompleto() {
		return fmt.Errorf("%w: la invitación ya está confirmada", ErrEstadoInvalido)
	}
	if i.CantidadInvitaciones == 1 {
		i.Estado = EstadoConfirmado
	} else {
		i.Estado = EstadoConfirmadoIncompleto
	}
	ahora := time.Now()
	i.FechaConfirmacion = &ahora
	if mensaje != "" {
		i.Mensaje = mensaje
	}
	return nil
}

// ConfirmarAsistenciaCompleta promueve confirmado_incompleto a confirmado.
// Solo el flujo la invoca, cuando el cupo de acompañantes queda lleno.
func (i *Invitado) ConfirmarAsistenciaCompleta() error {
	if !i.Estado.EsConfirmadoIncompleto() {
		return fmt.Errorf("%w: solo se puede completar una confirmación incompleta", ErrEstadoInvalido)
	}
	i.Estado = EstadoConfirmado
	return nil
}

// RevertirConfirmacion vuelve a confirmado_incompleto cuando un acompañante
// se elimina después de la confirmación completa.
func (i *Invitado) RevertirConfirmacion() error {
	if !i.Estado.EsConfirmado() {
		return fmt.Errorf("%w: solo se puede revertir una confirmación completa", ErrEstadoInvalido)
	}
	i.Estado = EstadoConfirmadoIncompleto
	return nil
}

// RechazarAsistencia declina la invitación desde cualquier estado no rechazado.
func (i *Invitado) RechazarAsistencia(mensaje string) error {
	if i.Estado.EsRechazado() {
		return fmt.Errorf("%w: la invitación ya está rechazada", ErrEstadoInvalido)
	}
	i.Estado = EstadoRechazado
	ahora := time.Now()
	i.FechaConfirmacion = &ahora
	if mensaje != "" {
		i.Mensaje = mensaje
	}
	return nil
}

// ActualizarDatosContacto reemplaza el contacto completo, nunca campo a campo.
func (i *Invitado) ActualizarDatosContacto(contacto DatosContacto) {
	i.Nombre = contacto.Nombre()
	i.Telefono = contacto.Telefono()
}

// ActualizarCantidadInvitaciones cambia el cupo y vuelve a derivar el estado
// con la cantidad actual de acompañantes, para no dejar un confirmado o un
// confirmado_incompleto obsoleto.
func (i *Invitado) ActualizarCantidadInvitaciones(nuevaCantidad, acompanantesActuales int) error {
	if nuevaCantidad < 1 {
		return fmt.Errorf("%w: la cantidad de invitaciones debe ser mayor a 0", ErrValidacion)
	}
	i.CantidadInvitaciones = nuevaCantidad
	if i.Estado.EsConfirmadoCompletoOIncompleto() {
		if acompanantesActuales >= i.MaximoAcompanantes() {
			i.Estado = EstadoConfirmado
		} else {
			i.Estado = EstadoConfirmadoIncompleto
		}
	}
	return nil
}

func (i *Invitado) ActualizarMensaje(mensaje string) {
	i.Mensaje = mensaje
}

// MarcarWhatsappEnviado registra un envío exitoso.
func (i *Invitado) MarcarWhatsappEnviado() {
	i.WhatsappEnviado = true
	ahora := time.Now()
	i.FechaEnvioWhatsapp = &ahora
	i.IntentosEnvio++
}

// IncrementarIntentosEnvio registra un intento fallido.
func (i *Invitado) IncrementarIntentosEnvio() {
	i.IntentosEnvio++
	ahora := time.Now()
	i.FechaEnvioWhatsapp = &ahora
}
