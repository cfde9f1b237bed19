package services

import (
	"fmt"
	"time"

	"github.com/emmavarela/invitados-server/models"
)

// ResultadoEnvio es el detalle por invitado de un envío de WhatsApp.
type ResultadoEnvio struct {
	InvitadoID      string `json:"invitado_id"`
	Nombre          string `json:"nombre"`
	Telefono        string `json:"telefono,omitempty"`
	Exitoso         bool   `json:"exitoso"`
	Error           string `json:"error,omitempty"`
	URLConfirmacion string `json:"url_confirmacion"`
}

// EnvioService despacha las invitaciones por WhatsApp y lleva el registro de
// enviados e intentos en el propio invitado.
type EnvioService struct {
	invitados   InvitadoRepository
	notificador Notificador
	frontendURL string
	evento      models.ConfirmacionEvento
	// pausa entre envíos masivos para no chocar con el rate limit de la API
	pausa time.Duration
}

func NuevoEnvioService(invitados InvitadoRepository, notificador Notificador, frontendURL string, evento models.ConfirmacionEvento) *EnvioService {
	return &EnvioService{
		invitados:   invitados,
		notificador: notificador,
		frontendURL: frontendURL,
		evento:      evento,
		pausa:       time.Second,
	}
}

func (s *EnvioService) urlConfirmacion(token string) string {
	return fmt.Sprintf("%s/confirmar/%s", s.frontendURL, token)
}

// EnviarIndividual manda la invitación a un solo invitado. Sin teléfono no
// hay envío posible y se reporta como fallido sin tocar contadores.
func (s *EnvioService) EnviarIndividual(invitadoID string) (ResultadoEnvio, error) {
	invitado, err := s.invitados.BuscarPorID(invitadoID)
	if err != nil {
		return ResultadoEnvio{}, err
	}

	resultado := ResultadoEnvio{
		InvitadoID:      invitado.ID,
		Nombre:          invitado.Nombre,
		Telefono:        invitado.Telefono,
		URLConfirmacion: s.urlConfirmacion(invitado.Token),
	}

	if invitado.Telefono == "" {
		resultado.Error = "el invitado no tiene número de teléfono registrado"
		return resultado, nil
	}

	mensaje := GenerarMensajeInvitacion(invitado.Nombre, resultado.URLConfirmacion, s.evento)

	exitoso, err := s.notificador.EnviarMensaje(invitado.DatosContacto().TelefonoLimpio(), mensaje)
	if err != nil {
		invitado.IncrementarIntentosEnvio()
		_ = s.invitados.Actualizar(invitado)
		resultado.Error = err.Error()
		return resultado, nil
	}

	if exitoso {
		invitado.MarcarWhatsappEnviado()
	} else {
		invitado.IncrementarIntentosEnvio()
		resultado.Error = "error enviando WhatsApp"
	}
	if err := s.invitados.Actualizar(invitado); err != nil {
		return resultado, err
	}

	resultado.Exitoso = exitoso
	return resultado, nil
}

// EnviarMasivo recorre todos los invitados con una pausa entre envíos.
func (s *EnvioService) EnviarMasivo() ([]ResultadoEnvio, error) {
	invitados, err := s.invitados.Listar()
	if err != nil {
		return nil, err
	}
	return s.enviarA(invitados), nil
}

// ReenviarFallidos reintenta solo los que todavía no tienen envío exitoso.
func (s *EnvioService) ReenviarFallidos() ([]ResultadoEnvio, error) {
	invitados, err := s.invitados.Listar()
	if err != nil {
		return nil, err
	}
	var pendientes []models.Invitado
	for _, invitado := range invitados {
		if !invitado.WhatsappEnviado {
			pendientes = append(pendientes, invitado)
		}
	}
	return s.enviarA(pendientes), nil
}

func (s *EnvioService) enviarA(invitados []models.Invitado) []ResultadoEnvio {
	resultados := make([]ResultadoEnvio, 0, len(invitados))
	for i, invitado := range invitados {
		if i > 0 && s.pausa > 0 {
			time.Sleep(s.pausa)
		}
		resultado, err := s.EnviarIndividual(invitado.ID)
		if err != nil {
			resultado = ResultadoEnvio{
				InvitadoID:      invitado.ID,
				Nombre:          invitado.Nombre,
				Telefono:        invitado.Telefono,
				Error:           err.Error(),
				URLConfirmacion: s.urlConfirmacion(invitado.Token),
			}
		}
		resultados = append(resultados, resultado)
	}
	return resultados
}
