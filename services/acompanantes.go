package services

import (
	"fmt"
	"time"

	"github.com/emmavarela/invitados-server/models"
)

// AcompananteService maneja el alta, edición y baja de acompañantes fuera del
// envío inicial, p. ej. cuando un invitado vuelve más tarde a completar su
// lista antes de la fecha límite.
type AcompananteService struct {
	invitados           InvitadoRepository
	acompanantes        AcompananteRepository
	candados            *CandadoInvitados
	contactoOrganizador string
	ahora               func() time.Time
}

func NuevoAcompananteService(
	invitados InvitadoRepository,
	acompanantes AcompananteRepository,
	candados *CandadoInvitados,
	contactoOrganizador string,
) *AcompananteService {
	return &AcompananteService{
		invitados:           invitados,
		acompanantes:        acompanantes,
		candados:            candados,
		contactoOrganizador: contactoOrganizador,
		ahora:               time.Now,
	}
}

// Crear agrega un acompañante respetando ventana de edición y cupo, y vuelve
// a evaluar la completitud de la confirmación.
func (s *AcompananteService) Crear(tokenCrudo, nombreCompleto, telefono string) (*models.Acompanante, error) {
	invitado, liberar, err := s.resolverYBloquear(tokenCrudo)
	if err != nil {
		return nil, err
	}
	defer liberar()

	if !invitado.PuedeEditarAcompanantes(s.ahora()) {
		return nil, errVentanaCerrada(invitado, s.contactoOrganizador)
	}

	cantidad, err := s.acompanantes.ContarPorInvitado(invitado.ID)
	if err != nil {
		return nil, err
	}
	maximo := invitado.MaximoAcompanantes()
	if int(cantidad) >= maximo {
		return nil, fmt.Errorf("%w: solo puedes agregar %d acompañante(s)", models.ErrCupoExcedido, maximo)
	}

	acompanante, err := models.NuevoAcompanante(invitado.ID, nombreCompleto, telefono)
	if err != nil {
		return nil, err
	}
	if err := s.acompanantes.Guardar(acompanante); err != nil {
		return nil, err
	}

	if err := s.reevaluarCompletitud(invitado); err != nil {
		return nil, err
	}
	return acompanante, nil
}

// Actualizar edita nombre/teléfono de un acompañante del propio invitado.
func (s *AcompananteService) Actualizar(tokenCrudo, acompananteID, nombreCompleto, telefono string) (*models.Acompanante, error) {
	invitado, liberar, err := s.resolverYBloquear(tokenCrudo)
	if err != nil {
		return nil, err
	}
	defer liberar()

	if !invitado.PuedeEditarAcompanantes(s.ahora()) {
		return nil, errVentanaCerrada(invitado, s.contactoOrganizador)
	}

	acompanante, err := s.acompanantes.BuscarPorID(acompananteID)
	if err != nil {
		return nil, err
	}
	if acompanante.InvitadoID != invitado.ID {
		return nil, fmt.Errorf("%w: el acompañante no pertenece a esta invitación", models.ErrSinPermiso)
	}

	if err := acompanante.ActualizarDatos(nombreCompleto, telefono); err != nil {
		return nil, err
	}
	if err := s.acompanantes.Actualizar(acompanante); err != nil {
		return nil, err
	}
	return acompanante, nil
}

// Eliminar borra un acompañante del propio invitado y vuelve a evaluar la
// completitud (una confirmación completa puede volver a incompleta).
func (s *AcompananteService) Eliminar(tokenCrudo, acompananteID string) error {
	invitado, liberar, err := s.resolverYBloquear(tokenCrudo)
	if err != nil {
		return err
	}
	defer liberar()

	if !invitado.PuedeEditarAcompanantes(s.ahora()) {
		return errVentanaCerrada(invitado, s.contactoOrganizador)
	}

	acompanante, err := s.acompanantes.BuscarPorID(acompananteID)
	if err != nil {
		return err
	}
	if acompanante.InvitadoID != invitado.ID {
		return fmt.Errorf("%w: el acompañante no pertenece a esta invitación", models.ErrSinPermiso)
	}

	if err := s.acompanantes.Eliminar(acompanante.ID); err != nil {
		return err
	}
	return s.reevaluarCompletitud(invitado)
}

// Listar es una lectura pura: todos los acompañantes del invitado en orden de
// creación.
func (s *AcompananteService) Listar(tokenCrudo string) ([]models.Acompanante, error) {
	invitado, err := s.resolverInvitado(tokenCrudo)
	if err != nil {
		return nil, err
	}
	return s.acompanantes.ListarPorInvitado(invitado.ID)
}

func (s *AcompananteService) resolverInvitado(tokenCrudo string) (*models.Invitado, error) {
	token, err := models.TokenDesdeString(tokenCrudo)
	if err != nil {
		return nil, err
	}
	return s.invitados.BuscarPorToken(token)
}

// resolverYBloquear resuelve el invitado y lo vuelve a leer con su candado
// tomado. La primera lectura solo sirve para conocer el ID.
func (s *AcompananteService) resolverYBloquear(tokenCrudo string) (*models.Invitado, func(), error) {
	invitado, err := s.resolverInvitado(tokenCrudo)
	if err != nil {
		return nil, nil, err
	}
	liberar := s.candados.Bloquear(invitado.ID)
	invitado, err = s.invitados.BuscarPorID(invitado.ID)
	if err != nil {
		liberar()
		return nil, nil, err
	}
	return invitado, liberar, nil
}

func (s *AcompananteService) reevaluarCompletitud(invitado *models.Invitado) error {
	cantidad, err := s.acompanantes.ContarPorInvitado(invitado.ID)
	if err != nil {
		return err
	}
	if evaluarCompletitud(invitado, int(cantidad)) {
		return s.invitados.Actualizar(invitado)
	}
	return nil
}
