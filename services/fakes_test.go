package services

import (
	"fmt"
	"sync"

	"github.com/emmavarela/invitados-server/models"
)

// Dobles en memoria de los repositorios. Guardan copias, igual que una base
// real: una mutación no persiste hasta pasar por Actualizar.

type invitadosEnMemoria struct {
	mu    sync.Mutex
	orden []string
	porID map[string]models.Invitado
}

func nuevoInvitadosEnMemoria() *invitadosEnMemoria {
	return &invitadosEnMemoria{porID: make(map[string]models.Invitado)}
}

func (r *invitadosEnMemoria) Guardar(invitado *models.Invitado) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[invitado.ID]; !ok {
		r.orden = append(r.orden, invitado.ID)
	}
	r.porID[invitado.ID] = *invitado
	return nil
}

func (r *invitadosEnMemoria) BuscarPorToken(token models.Token) (*models.Invitado, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, invitado := range r.porID {
		if invitado.Token == token.Valor() {
			copia := invitado
			return &copia, nil
		}
	}
	return nil, fmt.Errorf("%w: invitado", models.ErrNoEncontrado)
}

func (r *invitadosEnMemoria) BuscarPorID(id string) (*models.Invitado, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invitado, ok := r.porID[id]
	if !ok {
		return nil, fmt.Errorf("%w: invitado", models.ErrNoEncontrado)
	}
	copia := invitado
	return &copia, nil
}

func (r *invitadosEnMemoria) Listar() ([]models.Invitado, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lista := make([]models.Invitado, 0, len(r.orden))
	for _, id := range r.orden {
		if invitado, ok := r.porID[id]; ok {
			lista = append(lista, invitado)
		}
	}
	return lista, nil
}

func (r *invitadosEnMemoria) Actualizar(invitado *models.Invitado) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[invitado.ID]; !ok {
		return fmt.Errorf("%w: invitado", models.ErrNoEncontrado)
	}
	r.porID[invitado.ID] = *invitado
	return nil
}

func (r *invitadosEnMemoria) Eliminar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[id]; !ok {
		return fmt.Errorf("%w: invitado", models.ErrNoEncontrado)
	}
	delete(r.porID, id)
	return nil
}

func (r *invitadosEnMemoria) EliminarTodos() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.porID = make(map[string]models.Invitado)
	r.orden = nil
	return nil
}

func (r *invitadosEnMemoria) ContarPorEstado() (map[models.EstadoInvitacion]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conteo := make(map[models.EstadoInvitacion]int64)
	for _, invitado := range r.porID {
		conteo[invitado.Estado]++
	}
	return conteo, nil
}

type acompanantesEnMemoria struct {
	mu    sync.Mutex
	items []models.Acompanante
}

func nuevoAcompanantesEnMemoria() *acompanantesEnMemoria {
	return &acompanantesEnMemoria{}
}

func (r *acompanantesEnMemoria) Guardar(acompanante *models.Acompanante) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *acompanante)
	return nil
}

func (r *acompanantesEnMemoria) GuardarVarios(acompanantes []models.Acompanante) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, acompanantes...)
	return nil
}

func (r *acompanantesEnMemoria) BuscarPorID(id string) (*models.Acompanante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ID == id {
			copia := a
			return &copia, nil
		}
	}
	return nil, fmt.Errorf("%w: acompañante", models.ErrNoEncontrado)
}

func (r *acompanantesEnMemoria) ListarPorInvitado(invitadoID string) ([]models.Acompanante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lista []models.Acompanante
	for _, a := range r.items {
		if a.InvitadoID == invitadoID {
			lista = append(lista, a)
		}
	}
	return lista, nil
}

func (r *acompanantesEnMemoria) Actualizar(acompanante *models.Acompanante) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.items {
		if a.ID == acompanante.ID {
			r.items[i] = *acompanante
			return nil
		}
	}
	return fmt.Errorf("%w: acompañante", models.ErrNoEncontrado)
}

func (r *acompanantesEnMemoria) Eliminar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.items {
		if a.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: acompañante", models.ErrNoEncontrado)
}

func (r *acompanantesEnMemoria) EliminarPorInvitado(invitadoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	restantes := r.items[:0]
	for _, a := range r.items {
		if a.InvitadoID != invitadoID {
			restantes = append(restantes, a)
		}
	}
	r.items = restantes
	return nil
}

func (r *acompanantesEnMemoria) ContarPorInvitado(invitadoID string) (int64, error) {
	lista, _ := r.ListarPorInvitado(invitadoID)
	return int64(len(lista)), nil
}

func (r *acompanantesEnMemoria) ReemplazarPorInvitado(invitadoID string, acompanantes []models.Acompanante) error {
	if err := r.EliminarPorInvitado(invitadoID); err != nil {
		return err
	}
	return r.GuardarVarios(acompanantes)
}
