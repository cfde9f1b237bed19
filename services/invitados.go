package services

import (
	"fmt"
	"time"

	"github.com/emmavarela/invitados-server/models"
)

// CrearInvitadoDatos es una fila de alta, venga del panel o del Excel.
type CrearInvitadoDatos struct {
	Nombre               string `json:"nombre"`
	Telefono             string `json:"telefono"`
	Mensaje              string `json:"mensaje"`
	CantidadInvitaciones int    `json:"cantidad_invitaciones"`
}

// ActualizarInvitadoDatos: campos en nil no se tocan.
type ActualizarInvitadoDatos struct {
	Nombre               *string `json:"nombre"`
	Telefono             *string `json:"telefono"`
	CantidadInvitaciones *int    `json:"cantidad_invitaciones"`
	Mensaje              *string `json:"mensaje"`
}

// Estadisticas resume el avance de las confirmaciones para el panel.
type Estadisticas struct {
	Pendientes               int64 `json:"pendientes"`
	Confirmados              int64 `json:"confirmados"`
	ConfirmadosIncompleto    int64 `json:"confirmados_incompleto"`
	Rechazados               int64 `json:"rechazados"`
	Total                    int64 `json:"total"`
	TotalPersonas            int   `json:"total_personas"`
	TotalPersonasConfirmadas int   `json:"total_personas_confirmadas"`
	PorcentajeConfirmacion   int   `json:"porcentaje_confirmacion"`
}

// InvitadoService cubre el ciclo de vida administrativo de los invitados:
// altas (sueltas y en lote), listado, edición, bajas y estadísticas.
type InvitadoService struct {
	invitados          InvitadoRepository
	acompanantes       AcompananteRepository
	candados           *CandadoInvitados
	fechaLimiteEdicion time.Time
}

func NuevoInvitadoService(
	invitados InvitadoRepository,
	acompanantes AcompananteRepository,
	candados *CandadoInvitados,
	fechaLimiteEdicion time.Time,
) *InvitadoService {
	return &InvitadoService{
		invitados:          invitados,
		acompanantes:       acompanantes,
		candados:           candados,
		fechaLimiteEdicion: fechaLimiteEdicion,
	}
}

func (s *InvitadoService) Crear(datos CrearInvitadoDatos) (*models.Invitado, error) {
	cantidad := datos.CantidadInvitaciones
	if cantidad == 0 {
		cantidad = 1
	}
	invitado, err := models.NuevoInvitado(datos.Nombre, datos.Telefono, cantidad, datos.Mensaje, s.fechaLimiteEdicion)
	if err != nil {
		return nil, err
	}
	if err := s.invitados.Guardar(invitado); err != nil {
		return nil, err
	}
	return invitado, nil
}

// CrearEnLote da de alta fila por fila; una fila inválida no corta el lote,
// se acumula en errores con su posición.
func (s *InvitadoService) CrearEnLote(filas []CrearInvitadoDatos) ([]models.Invitado, []string) {
	creados := make([]models.Invitado, 0, len(filas))
	var errores []string
	for i, fila := range filas {
		invitado, err := s.Crear(fila)
		if err != nil {
			errores = append(errores, fmt.Sprintf("fila %d (%s): %v", i+1, fila.Nombre, err))
			continue
		}
		creados = append(creados, *invitado)
	}
	return creados, errores
}

func (s *InvitadoService) Listar() ([]models.Invitado, error) {
	return s.invitados.Listar()
}

// ObtenerPorToken es la lectura pública que alimenta la página de
// confirmación.
func (s *InvitadoService) ObtenerPorToken(tokenCrudo string) (*models.Invitado, []models.Acompanante, error) {
	token, err := models.TokenDesdeString(tokenCrudo)
	if err != nil {
		return nil, nil, err
	}
	invitado, err := s.invitados.BuscarPorToken(token)
	if err != nil {
		return nil, nil, err
	}
	acompanantes, err := s.acompanantes.ListarPorInvitado(invitado.ID)
	if err != nil {
		return nil, nil, err
	}
	return invitado, acompanantes, nil
}

// Actualizar edita contacto, cantidad y mensaje. Al cambiar la cantidad se
// vuelve a derivar el estado con el conteo real de acompañantes.
func (s *InvitadoService) Actualizar(id string, datos ActualizarInvitadoDatos) (*models.Invitado, error) {
	invitado, err := s.invitados.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	liberar := s.candados.Bloquear(invitado.ID)
	defer liberar()

	// Relectura con el candado tomado; la anterior pudo cruzarse con una
	// confirmación en vuelo.
	invitado, err = s.invitados.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	if datos.Nombre != nil || datos.Telefono != nil {
		nombre := invitado.Nombre
		telefono := invitado.Telefono
		if datos.Nombre != nil {
			nombre = *datos.Nombre
		}
		if datos.Telefono != nil {
			telefono = *datos.Telefono
		}
		contacto, err := models.NuevoDatosContacto(nombre, telefono)
		if err != nil {
			return nil, err
		}
		invitado.ActualizarDatosContacto(contacto)
	}

	if datos.CantidadInvitaciones != nil {
		cantidad, err := s.acompanantes.ContarPorInvitado(invitado.ID)
		if err != nil {
			return nil, err
		}
		if err := invitado.ActualizarCantidadInvitaciones(*datos.CantidadInvitaciones, int(cantidad)); err != nil {
			return nil, err
		}
	}

	if datos.Mensaje != nil {
		invitado.ActualizarMensaje(*datos.Mensaje)
	}

	if err := s.invitados.Actualizar(invitado); err != nil {
		return nil, err
	}
	return invitado, nil
}

func (s *InvitadoService) Eliminar(id string) error {
	if err := s.acompanantes.EliminarPorInvitado(id); err != nil {
		return err
	}
	return s.invitados.Eliminar(id)
}

func (s *InvitadoService) EliminarTodos() error {
	return s.invitados.EliminarTodos()
}

// Estadisticas combina el conteo por estado con el total de personas que
// cubre cada invitación. Un confirmado completo suma todas sus invitaciones;
// un incompleto suma titular + acompañantes registrados.
func (s *InvitadoService) Estadisticas() (Estadisticas, error) {
	porEstado, err := s.invitados.ContarPorEstado()
	if err != nil {
		return Estadisticas{}, err
	}

	invitados, err := s.invitados.Listar()
	if err != nil {
		return Estadisticas{}, err
	}

	stats := Estadisticas{
		Pendientes:            porEstado[models.EstadoPendiente],
		Confirmados:           porEstado[models.EstadoConfirmado],
		ConfirmadosIncompleto: porEstado[models.EstadoConfirmadoIncompleto],
		Rechazados:            porEstado[models.EstadoRechazado],
		Total:                 int64(len(invitados)),
	}

	for _, invitado := range invitados {
		stats.TotalPersonas += invitado.CantidadInvitaciones
		switch {
		case invitado.Estado.EsConfirmado():
			stats.TotalPersonasConfirmadas += invitado.CantidadInvitaciones
		case invitado.Estado.EsConfirmadoIncompleto():
			stats.TotalPersonasConfirmadas += 1 + len(invitado.Acompanantes)
		}
	}

	if stats.TotalPersonas > 0 {
		stats.PorcentajeConfirmacion = int(float64(stats.TotalPersonasConfirmadas)/float64(stats.TotalPersonas)*100 + 0.5)
	}
	return stats, nil
}
