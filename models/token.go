package models

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// Token es el identificador público y opaco de una invitación. Nunca se usa
// como clave primaria; solo como handle para el link de confirmación.
type Token struct {
	valor string
}

// GenerarToken crea un token nuevo a partir de 32 bytes aleatorios.
func GenerarToken() (Token, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return Token{}, err
	}
	return Token{valor: base64.RawURLEncoding.EncodeToString(b)}, nil
}

// TokenDesdeString valida un token recibido de fuera.
func TokenDesdeString(valor string) (Token, error) {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return Token{}, fmt.Errorf("%w: el token no puede estar vacío", ErrValidacion)
	}
	if len(valor) < 10 {
		return Token{}, fmt.Errorf("%w: el token debe tener al menos 10 caracteres", ErrValidacion)
	}
	return Token{valor: valor}, nil
}

func (t Token) Valor() string {
	return t.valor
}

func (t Token) Igual(otro Token) bool {
	return t.valor == otro.valor
}
