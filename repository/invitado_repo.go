package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emmavarela/invitados-server/models"
)

// InvitadoRepository implementa el contrato de persistencia de invitados
// sobre gorm. Una fila ausente se traduce a models.ErrNoEncontrado; cualquier
// otro fallo de la base se propaga tal cual.
type InvitadoRepository struct {
	db *gorm.DB
}

func NewInvitadoRepository(db *gorm.DB) *InvitadoRepository {
	return &InvitadoRepository{db: db}
}

func (r *InvitadoRepository) Guardar(invitado *models.Invitado) error {
	return r.db.Create(invitado).Error
}

func (r *InvitadoRepository) BuscarPorToken(token models.Token) (*models.Invitado, error) {
	var invitado models.Invitado
	err := r.db.Where("token = ?", token.Valor()).First(&invitado).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invitado", models.ErrNoEncontrado)
	}
	if err != nil {
		return nil, err
	}
	return &invitado, nil
}

func (r *InvitadoRepository) BuscarPorID(id string) (*models.Invitado, error) {
	var invitado models.Invitado
	err := r.db.First(&invitado, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invitado", models.ErrNoEncontrado)
	}
	if err != nil {
		return nil, err
	}
	return &invitado, nil
}

// Listar devuelve todos los invitados con sus acompañantes precargados en
// orden de creación.
func (r *InvitadoRepository) Listar() ([]models.Invitado, error) {
	var invitados []models.Invitado
	err := r.db.
		Preload("Acompanantes", func(db *gorm.DB) *gorm.DB {
			return db.Order("fecha_creacion asc")
		}).
		Order("fecha_creacion asc").
		Find(&invitados).Error
	return invitados, err
}

func (r *InvitadoRepository) Actualizar(invitado *models.Invitado) error {
	return r.db.Save(invitado).Error
}

func (r *InvitadoRepository) Eliminar(id string) error {
	res := r.db.Delete(&models.Invitado{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: invitado", models.ErrNoEncontrado)
	}
	return nil
}

func (r *InvitadoRepository) EliminarTodos() error {
	return r.db.Where("1 = 1").Delete(&models.Invitado{}).Error
}

func (r *InvitadoRepository) ContarPorEstado() (map[models.EstadoInvitacion]int64, error) {
	type fila struct {
		Estado models.EstadoInvitacion
		Total  int64
	}
	var filas []fila
	err := r.db.Model(&models.Invitado{}).
		Select("estado, count(*) as total").
		Group("estado").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	conteo := make(map[models.EstadoInvitacion]int64, len(filas))
	for _, f := range filas {
		conteo[f.Estado] = f.Total
	}
	return conteo, nil
}
