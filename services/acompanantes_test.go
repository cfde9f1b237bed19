package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmavarela/invitados-server/models"
)

type entornoAcompanantes struct {
	invitados    *invitadosEnMemoria
	acompanantes *acompanantesEnMemoria
	servicio     *AcompananteService
}

func nuevoEntornoAcompanantes(t *testing.T) *entornoAcompanantes {
	t.Helper()
	e := &entornoAcompanantes{
		invitados:    nuevoInvitadosEnMemoria(),
		acompanantes: nuevoAcompanantesEnMemoria(),
	}
	e.servicio = NuevoAcompananteService(e.invitados, e.acompanantes, NuevoCandadoInvitados(), contactoDePrueba)
	return e
}

func (e *entornoAcompanantes) sembrarInvitado(t *testing.T, cantidad int) *models.Invitado {
	t.Helper()
	invitado, err := models.NuevoInvitado("Lucía Pérez", "", cantidad, "", time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, e.invitados.Guardar(invitado))
	return invitado
}

func (e *entornoAcompanantes) estadoPersistido(t *testing.T, id string) models.EstadoInvitacion {
	t.Helper()
	invitado, err := e.invitados.BuscarPorID(id)
	require.NoError(t, err)
	return invitado.Estado
}

func TestCrearAcompanante(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 3)

	acompanante, err := e.servicio.Crear(invitado.Token, "Marta Gómez", "1155550000")
	require.NoError(t, err)

	assert.Equal(t, invitado.ID, acompanante.InvitadoID)
	assert.Equal(t, "Marta Gómez", acompanante.NombreCompleto)

	lista, err := e.servicio.Listar(invitado.Token)
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}

func TestCrearAcompananteCompletaLaConfirmacion(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 2)
	require.NoError(t, invitado.ConfirmarAsistencia(""))
	require.NoError(t, e.invitados.Actualizar(invitado))
	require.Equal(t, models.EstadoConfirmadoIncompleto, e.estadoPersistido(t, invitado.ID))

	_, err := e.servicio.Crear(invitado.Token, "Marta Gómez", "")
	require.NoError(t, err)

	// El último acompañante del cupo promueve la confirmación a completa.
	assert.Equal(t, models.EstadoConfirmado, e.estadoPersistido(t, invitado.ID))
}

func TestCrearAcompananteCupoExcedido(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 2)

	_, err := e.servicio.Crear(invitado.Token, "Marta Gómez", "")
	require.NoError(t, err)

	_, err = e.servicio.Crear(invitado.Token, "Pedro Gómez", "")
	assert.ErrorIs(t, err, models.ErrCupoExcedido)

	cantidad, _ := e.acompanantes.ContarPorInvitado(invitado.ID)
	assert.EqualValues(t, 1, cantidad)
}

func TestCrearAcompananteSinCupo(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 1)

	_, err := e.servicio.Crear(invitado.Token, "Marta Gómez", "")
	assert.ErrorIs(t, err, models.ErrCupoExcedido)
}

func TestCrearAcompananteVentanaCerrada(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 3)
	e.servicio.ahora = func() time.Time { return invitado.FechaLimiteEdicion.Add(time.Minute) }

	_, err := e.servicio.Crear(invitado.Token, "Marta Gómez", "")

	assert.ErrorIs(t, err, models.ErrVentanaCerrada)
	assert.Contains(t, err.Error(), contactoDePrueba)
}

func TestActualizarAcompanante(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 3)
	creado, err := e.servicio.Crear(invitado.Token, "Marta Gómez", "")
	require.NoError(t, err)

	actualizado, err := e.servicio.Actualizar(invitado.Token, creado.ID, "Marta G. de Pérez", "1155550000")
	require.NoError(t, err)

	assert.Equal(t, "Marta G. de Pérez", actualizado.NombreCompleto)

	persistido, err := e.acompanantes.BuscarPorID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marta G. de Pérez", persistido.NombreCompleto)
	assert.Equal(t, "1155550000", persistido.Telefono)
}

func TestActualizarAcompananteDeOtroInvitado(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	duenio := e.sembrarInvitado(t, 3)
	intruso := e.sembrarInvitado(t, 3)
	creado, err := e.servicio.Crear(duenio.Token, "Marta Gómez", "")
	require.NoError(t, err)

	_, err = e.servicio.Actualizar(intruso.Token, creado.ID, "Otro Nombre", "")
	assert.ErrorIs(t, err, models.ErrSinPermiso)

	err = e.servicio.Eliminar(intruso.Token, creado.ID)
	assert.ErrorIs(t, err, models.ErrSinPermiso)

	persistido, err := e.acompanantes.BuscarPorID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marta Gómez", persistido.NombreCompleto)
}

func TestEliminarAcompananteRevierteLaConfirmacion(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 2)
	require.NoError(t, invitado.ConfirmarAsistencia(""))
	require.NoError(t, e.invitados.Actualizar(invitado))

	creado, err := e.servicio.Crear(invitado.Token, "Marta Gómez", "")
	require.NoError(t, err)
	require.Equal(t, models.EstadoConfirmado, e.estadoPersistido(t, invitado.ID))

	require.NoError(t, e.servicio.Eliminar(invitado.Token, creado.ID))

	// Al quedar el cupo incompleto la confirmación vuelve a incompleta.
	assert.Equal(t, models.EstadoConfirmadoIncompleto, e.estadoPersistido(t, invitado.ID))
	cantidad, _ := e.acompanantes.ContarPorInvitado(invitado.ID)
	assert.Zero(t, cantidad)
}

func TestEliminarAcompananteInexistente(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 3)

	err := e.servicio.Eliminar(invitado.Token, "no-existe")
	assert.ErrorIs(t, err, models.ErrNoEncontrado)
}

func TestListarAcompanantesEnOrdenDeCreacion(t *testing.T) {
	e := nuevoEntornoAcompanantes(t)
	invitado := e.sembrarInvitado(t, 4)

	for _, nombre := range []string{"Marta Gómez", "Pedro Gómez", "Ana López"} {
		_, err := e.servicio.Crear(invitado.Token, nombre, "")
		require.NoError(t, err)
	}

	lista, err := e.servicio.Listar(invitado.Token)
	require.NoError(t, err)
	require.Len(t, lista, 3)
	assert.Equal(t, "Marta Gómez", lista[0].NombreCompleto)
	assert.Equal(t, "Pedro Gómez", lista[1].NombreCompleto)
	assert.Equal(t, "Ana López", lista[2].NombreCompleto)
}
