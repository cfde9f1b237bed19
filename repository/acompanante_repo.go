package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emmavarela/invitados-server/models"
)

// AcompananteRepository persiste los acompañantes de un invitado.
type AcompananteRepository struct {
	db *gorm.DB
}

func NewAcompananteRepository(db *gorm.DB) *AcompananteRepository {
	return &AcompananteRepository{db: db}
}

func (r *AcompananteRepository) Guardar(acompanante *models.Acompanante) error {
	return r.db.Create(acompanante).Error
}

func (r *AcompananteRepository) GuardarVarios(acompanantes []models.Acompanante) error {
	if len(acompanantes) == 0 {
		return nil
	}
	return r.db.Create(&acompanantes).Error
}

func (r *AcompananteRepository) BuscarPorID(id string) (*models.Acompanante, error) {
	var acompanante models.Acompanante
	err := r.db.First(&acompanante, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: acompañante", models.ErrNoEncontrado)
	}
	if err != nil {
		return nil, err
	}
	return &acompanante, nil
}

func (r *AcompananteRepository) ListarPorInvitado(invitadoID string) ([]models.Acompanante, error) {
	var acompanantes []models.Acompanante
	err := r.db.
		Where("invitado_id = ?", invitadoID).
		Order("fecha_creacion asc").
		Find(&acompanantes).Error
	return acompanantes, err
}

func (r *AcompananteRepository) Actualizar(acompanante *models.Acompanante) error {
	return r.db.Save(acompanante).Error
}

func (r *AcompananteRepository) Eliminar(id string) error {
	res := r.db.Delete(&models.Acompanante{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: acompañante", models.ErrNoEncontrado)
	}
	return nil
}

func (r *AcompananteRepository) EliminarPorInvitado(invitadoID string) error {
	return r.db.Where("invitado_id = ?", invitadoID).Delete(&models.Acompanante{}).Error
}

func (r *AcompananteRepository) ContarPorInvitado(invitadoID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Acompanante{}).
		Where("invitado_id = ?", invitadoID).
		Count(&total).Error
	return total, err
}

// ReemplazarPorInvitado borra y recrea el conjunto completo de acompañantes
// en una sola transacción: o queda el conjunto nuevo o queda el anterior.
func (r *AcompananteRepository) ReemplazarPorInvitado(invitadoID string, acompanantes []models.Acompanante) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invitado_id = ?", invitadoID).Delete(&models.Acompanante{}).Error; err != nil {
			return err
		}
		if len(acompanantes) == 0 {
			return nil
		}
		return tx.Create(&acompanantes).Error
	})
}
