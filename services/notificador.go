package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/emmavarela/invitados-server/models"
)

// Notificador es el contrato de salida de mensajes. El núcleo nunca envía
// nada por su cuenta; esta interfaz la consume solo el flujo de envíos.
type Notificador interface {
	EnviarMensaje(telefono, texto string) (bool, error)
}

// WhatsAppCloud envía mensajes de texto por la Cloud API de WhatsApp
// (graph.facebook.com). Sin credenciales configuradas no falla: avisa por log
// y reporta el envío como no exitoso.
type WhatsAppCloud struct {
	cliente       *http.Client
	token         string
	phoneNumberID string
	codigoPais    string
	baseURL       string
}

func NuevoWhatsAppCloud(token, phoneNumberID, codigoPais string) *WhatsAppCloud {
	if codigoPais == "" {
		codigoPais = "57"
	}
	return &WhatsAppCloud{
		cliente:       &http.Client{Timeout: 15 * time.Second},
		token:         token,
		phoneNumberID: phoneNumberID,
		codigoPais:    codigoPais,
		baseURL:       "https://graph.facebook.com/v18.0",
	}
}

func (w *WhatsAppCloud) EnviarMensaje(telefono, texto string) (bool, error) {
	if w.token == "" || w.phoneNumberID == "" {
		log.Println("credenciales de WhatsApp sin configurar, se omite el envío")
		return false, nil
	}

	cuerpo, err := json.Marshal(map[string]any{
		"messaging_product": "whatsapp",
		"to":                w.normalizarTelefono(telefono),
		"type":              "text",
		"text":              map[string]string{"body": texto},
	})
	if err != nil {
		return false, err
	}

	url := fmt.Sprintf("%s/%s/messages", w.baseURL, w.phoneNumberID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(cuerpo))
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+w.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.cliente.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detalle, _ := io.ReadAll(resp.Body)
		log.Printf("la API de WhatsApp respondió %d: %s", resp.StatusCode, detalle)
		return false, nil
	}
	return true, nil
}

// normalizarTelefono deja solo dígitos (y un '+' inicial) y antepone el
// código de país si falta.
func (w *WhatsAppCloud) normalizarTelefono(telefono string) string {
	var b strings.Builder
	for i, r := range telefono {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	limpio := b.String()
	if strings.HasPrefix(limpio, "+") {
		return limpio
	}
	if strings.HasPrefix(limpio, w.codigoPais) {
		return "+" + limpio
	}
	return "+" + w.codigoPais + limpio
}

// GenerarMensajeInvitacion arma el texto personalizado con el link de
// confirmación y los datos del evento.
func GenerarMensajeInvitacion(nombre, urlConfirmacion string, evento models.ConfirmacionEvento) string {
	return fmt.Sprintf(`¡Hola %s! 🎓

Te invitamos cordialmente a nuestra %s.

📅 *Fecha:* %s
📍 *Lugar:* %s

Para confirmar tu asistencia, por favor ingresá al siguiente enlace:
%s

En la página vas a encontrar todos los detalles importantes del evento, incluyendo el código de vestimenta y notas especiales.

¡Esperamos contar con vos en este día tan especial! ✨`,
		nombre, evento.Titulo, evento.FechaFormateada(), evento.Ubicacion, urlConfirmacion)
}
