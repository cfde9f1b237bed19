package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Formato internacional tras limpiar espacios, guiones y paréntesis:
// '+' opcional y 8 a 15 dígitos sin cero inicial.
var telefonoRegex = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)

var limpiadorTelefono = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// DatosContacto es el par nombre/teléfono de un invitado. Inmutable: para
// cambiar el contacto se reemplaza el valor completo.
type DatosContacto struct {
	nombre   string
	telefono string
}

// NuevoDatosContacto valida y normaliza. El teléfono es opcional.
func NuevoDatosContacto(nombre, telefono string) (DatosContacto, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return DatosContacto{}, fmt.Errorf("%w: el nombre no puede estar vacío", ErrValidacion)
	}
	if len([]rune(nombre)) < 2 {
		return DatosContacto{}, fmt.Errorf("%w: el nombre debe tener al menos 2 caracteres", ErrValidacion)
	}
	if len([]rune(nombre)) > 100 {
		return DatosContacto{}, fmt.Errorf("%w: el nombre no puede tener más de 100 caracteres", ErrValidacion)
	}

	telefono = strings.TrimSpace(telefono)
	if telefono != "" {
		if !telefonoRegex.MatchString(limpiadorTelefono.Replace(telefono)) {
			return DatosContacto{}, fmt.Errorf("%w: el formato del teléfono no es válido", ErrValidacion)
		}
	}

	return DatosContacto{nombre: nombre, telefono: telefono}, nil
}

func (d DatosContacto) Nombre() string {
	return d.nombre
}

func (d DatosContacto) Telefono() string {
	return d.telefono
}

// TelefonoLimpio devuelve el teléfono sin separadores, listo para marcar.
func (d DatosContacto) TelefonoLimpio() string {
	return limpiadorTelefono.Replace(d.telefono)
}

func (d DatosContacto) Igual(otro DatosContacto) bool {
	return d.nombre == otro.nombre && d.telefono == otro.telefono
}
