package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Acompanante pertenece a un único invitado; nunca se comparte entre
// invitaciones. El teléfono es texto libre, no se valida formato.
type Acompanante struct {
	ID                 string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	InvitadoID         string    `gorm:"column:invitado_id;size:36;not null;index" json:"invitado_id"`
	NombreCompleto     string    `gorm:"column:nombre_completo;size:100;not null" json:"nombre_completo"`
	Telefono           string    `gorm:"column:telefono;size:30" json:"telefono,omitempty"`
	FechaCreacion      time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (Acompanante) TableName() string {
	return "acompanantes"
}

// NuevoAcompanante valida el nombre y asigna id.
func NuevoAcompanante(invitadoID, nombreCompleto, telefono string) (*Acompanante, error) {
	if err := validarNombreAcompanante(nombreCompleto); err != nil {
		return nil, err
	}
	return &Acompanante{
		ID:             uuid.NewString(),
		InvitadoID:     invitadoID,
		NombreCompleto: strings.TrimSpace(nombreCompleto),
		Telefono:       strings.TrimSpace(telefono),
	}, nil
}

// ActualizarDatos reemplaza nombre y teléfono revalidando el nombre.
func (a *Acompanante) ActualizarDatos(nombreCompleto, telefono string) error {
	if err := validarNombreAcompanante(nombreCompleto); err != nil {
		return err
	}
	a.NombreCompleto = strings.TrimSpace(nombreCompleto)
	a.Telefono = strings.TrimSpace(telefono)
	return nil
}

func (a *Acompanante) TieneTelefono() bool {
	return strings.TrimSpace(a.Telefono) != ""
}

func validarNombreAcompanante(nombre string) error {
	limpio := strings.TrimSpace(nombre)
	if limpio == "" {
		return fmt.Errorf("%w: el nombre completo del acompañante es requerido", ErrValidacion)
	}
	if len([]rune(limpio)) < 2 {
		return fmt.Errorf("%w: el nombre completo debe tener al menos 2 caracteres", ErrValidacion)
	}
	if len([]rune(limpio)) > 100 {
		return fmt.Errorf("%w: el nombre completo no puede exceder 100 caracteres", ErrValidacion)
	}
	return nil
}
