package services

import "github.com/emmavarela/invitados-server/models"

// Contratos de persistencia que consumen los services. Las implementaciones
// gorm viven en el paquete repository; los tests usan dobles en memoria.

type InvitadoRepository interface {
	Guardar(invitado *models.Invitado) error
	BuscarPorToken(token models.Token) (*models.Invitado, error)
	BuscarPorID(id string) (*models.Invitado, error)
	Listar() ([]models.Invitado, error)
	Actualizar(invitado *models.Invitado) error
	Eliminar(id string) error
	EliminarTodos() error
	ContarPorEstado() (map[models.EstadoInvitacion]int64, error)
}

type AcompananteRepository interface {
	Guardar(acompanante *models.Acompanante) error
	GuardarVarios(acompanantes []models.Acompanante) error
	BuscarPorID(id string) (*models.Acompanante, error)
	ListarPorInvitado(invitadoID string) ([]models.Acompanante, error)
	Actualizar(acompanante *models.Acompanante) error
	Eliminar(id string) error
	EliminarPorInvitado(invitadoID string) error
	ContarPorInvitado(invitadoID string) (int64, error)
	// ReemplazarPorInvitado borra y recrea el conjunto en una unidad atómica.
	ReemplazarPorInvitado(invitadoID string, acompanantes []models.Acompanante) error
}
