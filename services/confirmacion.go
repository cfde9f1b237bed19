package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/emmavarela/invitados-server/models"
)

// AcompananteNuevo es la entrada cruda de un acompañante en el formulario de
// confirmación. Las entradas con nombre en blanco se ignoran sin error.
type AcompananteNuevo struct {
	NombreCompleto string `json:"nombre_completo"`
	Telefono       string `json:"telefono"`
}

// ConfirmacionService orquesta el flujo de confirmar/rechazar una invitación:
// resuelve el invitado por token, aplica la transición, reemplaza los
// acompañantes y vuelve a evaluar la completitud antes de persistir.
type ConfirmacionService struct {
	invitados           InvitadoRepository
	acompanantes        AcompananteRepository
	eventos             *PublicadorEventos
	candados            *CandadoInvitados
	contactoOrganizador string
	ahora               func() time.Time
}

func NuevoConfirmacionService(
	invitados InvitadoRepository,
	acompanantes AcompananteRepository,
	eventos *PublicadorEventos,
	candados *CandadoInvitados,
	contactoOrganizador string,
) *ConfirmacionService {
	return &ConfirmacionService{
		invitados:           invitados,
		acompanantes:        acompanantes,
		eventos:             eventos,
		candados:            candados,
		contactoOrganizador: contactoOrganizador,
		ahora:               time.Now,
	}
}

// ResponderInvitacion aplica la respuesta del invitado y devuelve la
// proyección actualizada (invitado + acompañantes).
func (s *ConfirmacionService) ResponderInvitacion(tokenCrudo string, confirmado bool, mensaje string, entradas []AcompananteNuevo) (*models.Invitado, []models.Acompanante, error) {
	token, err := models.TokenDesdeString(tokenCrudo)
	if err != nil {
		return nil, nil, err
	}
	invitado, err := s.invitados.BuscarPorToken(token)
	if err != nil {
		return nil, nil, err
	}

	liberar := s.candados.Bloquear(invitado.ID)
	defer liberar()

	// La lectura por token corrió sin el candado y pudo quedar vieja frente a
	// otra respuesta simultánea; se relee con el candado tomado.
	invitado, err = s.invitados.BuscarPorID(invitado.ID)
	if err != nil {
		return nil, nil, err
	}

	if !confirmado {
		if err := invitado.RechazarAsistencia(mensaje); err != nil {
			return nil, nil, err
		}
		if err := s.invitados.Actualizar(invitado); err != nil {
			return nil, nil, err
		}
		s.eventos.Publicar(InvitacionConfirmada{Invitado: *invitado, Tipo: TipoRechazado, OcurridoEn: s.ahora()})
		acompanantes, err := s.acompanantes.ListarPorInvitado(invitado.ID)
		if err != nil {
			return nil, nil, err
		}
		return invitado, acompanantes, nil
	}

	// Un reenvío sobre una invitación ya aceptada no re-estampa la
	// confirmación inicial, pero sí puede adjuntar acompañantes.
	if !invitado.Estado.EsConfirmadoCompletoOIncompleto() {
		if err := invitado.ConfirmarAsistencia(mensaje); err != nil {
			return nil, nil, err
		}
	}

	maximo := invitado.MaximoAcompanantes()
	if maximo > 0 && len(entradas) > 0 {
		if !invitado.PuedeEditarAcompanantes(s.ahora()) {
			return nil, nil, s.errVentanaCerrada(invitado)
		}
		nuevos, err := s.armarAcompanantes(invitado.ID, entradas)
		if err != nil {
			return nil, nil, err
		}
		if len(nuevos) > maximo {
			return nil, nil, fmt.Errorf("%w: solo puedes registrar %d acompañante(s)", models.ErrCupoExcedido, maximo)
		}
		if err := s.acompanantes.ReemplazarPorInvitado(invitado.ID, nuevos); err != nil {
			return nil, nil, err
		}
	}

	if maximo > 0 {
		cantidad, err := s.acompanantes.ContarPorInvitado(invitado.ID)
		if err != nil {
			return nil, nil, err
		}
		evaluarCompletitud(invitado, int(cantidad))
	}

	if err := s.invitados.Actualizar(invitado); err != nil {
		return nil, nil, err
	}
	s.eventos.Publicar(InvitacionConfirmada{Invitado: *invitado, Tipo: TipoConfirmado, OcurridoEn: s.ahora()})

	acompanantes, err := s.acompanantes.ListarPorInvitado(invitado.ID)
	if err != nil {
		return nil, nil, err
	}
	return invitado, acompanantes, nil
}

// armarAcompanantes valida las entradas con nombre; las vacías se saltean.
func (s *ConfirmacionService) armarAcompanantes(invitadoID string, entradas []AcompananteNuevo) ([]models.Acompanante, error) {
	nuevos := make([]models.Acompanante, 0, len(entradas))
	for _, entrada := range entradas {
		if strings.TrimSpace(entrada.NombreCompleto) == "" {
			continue
		}
		acompanante, err := models.NuevoAcompanante(invitadoID, entrada.NombreCompleto, entrada.Telefono)
		if err != nil {
			return nil, err
		}
		nuevos = append(nuevos, *acompanante)
	}
	return nuevos, nil
}

func (s *ConfirmacionService) errVentanaCerrada(invitado *models.Invitado) error {
	return errVentanaCerrada(invitado, s.contactoOrganizador)
}

func errVentanaCerrada(invitado *models.Invitado, contacto string) error {
	return fmt.Errorf("%w: la fecha límite era el %s; para cambios contactá a %s",
		models.ErrVentanaCerrada,
		invitado.FechaLimiteEdicion.Format("02/01/2006"),
		contacto)
}

// evaluarCompletitud vuelve a derivar el estado según el conteo actual de
// acompañantes. Devuelve true si el estado cambió.
func evaluarCompletitud(invitado *models.Invitado, cantidadAcompanantes int) bool {
	maximo := invitado.MaximoAcompanantes()
	if maximo <= 0 {
		return false
	}
	if cantidadAcompanantes >= maximo && invitado.Estado.EsConfirmadoIncompleto() {
		return invitado.ConfirmarAsistenciaCompleta() == nil
	}
	if cantidadAcompanantes < maximo && invitado.Estado.EsConfirmado() {
		return invitado.RevertirConfirmacion() == nil
	}
	return false
}
