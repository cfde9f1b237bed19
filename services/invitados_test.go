package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmavarela/invitados-server/models"
)

type entornoInvitados struct {
	invitados    *invitadosEnMemoria
	acompanantes *acompanantesEnMemoria
	servicio     *InvitadoService
}

func nuevoEntornoInvitados(t *testing.T) *entornoInvitados {
	t.Helper()
	e := &entornoInvitados{
		invitados:    nuevoInvitadosEnMemoria(),
		acompanantes: nuevoAcompanantesEnMemoria(),
	}
	e.servicio = NuevoInvitadoService(e.invitados, e.acompanantes, NuevoCandadoInvitados(), time.Now().Add(48*time.Hour))
	return e
}

func TestCrearInvitado(t *testing.T) {
	e := nuevoEntornoInvitados(t)

	invitado, err := e.servicio.Crear(CrearInvitadoDatos{Nombre: "Lucía Pérez", Telefono: "1138427868", CantidadInvitaciones: 3})
	require.NoError(t, err)

	assert.Equal(t, models.EstadoPendiente, invitado.Estado)
	assert.Equal(t, 3, invitado.CantidadInvitaciones)
	assert.NotEmpty(t, invitado.Token)

	persistido, err := e.invitados.BuscarPorID(invitado.ID)
	require.NoError(t, err)
	assert.Equal(t, invitado.Token, persistido.Token)
}

func TestCrearInvitadoCantidadPorDefecto(t *testing.T) {
	e := nuevoEntornoInvitados(t)

	invitado, err := e.servicio.Crear(CrearInvitadoDatos{Nombre: "Lucía Pérez"})
	require.NoError(t, err)

	assert.Equal(t, 1, invitado.CantidadInvitaciones)
	assert.False(t, invitado.NecesitaAcompanantes())
}

func TestCrearEnLoteAcumulaErroresPorFila(t *testing.T) {
	e := nuevoEntornoInvitados(t)

	creados, errores := e.servicio.CrearEnLote([]CrearInvitadoDatos{
		{Nombre: "Lucía Pérez", CantidadInvitaciones: 2},
		{Nombre: "", CantidadInvitaciones: 1},
		{Nombre: "Pedro Gómez", Telefono: "teléfono-malo"},
		{Nombre: "Ana López"},
	})

	assert.Len(t, creados, 2)
	require.Len(t, errores, 2)
	assert.Contains(t, errores[0], "fila 2")
	assert.Contains(t, errores[1], "fila 3")

	lista, err := e.servicio.Listar()
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}

func TestObtenerPorToken(t *testing.T) {
	e := nuevoEntornoInvitados(t)
	creado, err := e.servicio.Crear(CrearInvitadoDatos{Nombre: "Lucía Pérez", CantidadInvitaciones: 2})
	require.NoError(t, err)

	acompanante, err := models.NuevoAcompanante(creado.ID, "Marta Gómez", "")
	require.NoError(t, err)
	require.NoError(t, e.acompanantes.Guardar(acompanante))

	invitado, acompanantes, err := e.servicio.ObtenerPorToken(creado.Token)
	require.NoError(t, err)

	assert.Equal(t, creado.ID, invitado.ID)
	assert.Len(t, acompanantes, 1)

	_, _, err = e.servicio.ObtenerPorToken("token-que-no-existe")
	assert.ErrorIs(t, err, models.ErrNoEncontrado)
}

func TestActualizarInvitadoCamposParciales(t *testing.T) {
	e := nuevoEntornoInvitados(t)
	creado, err := e.servicio.Crear(CrearInvitadoDatos{Nombre: "Lucía Pérez", Telefono: "1138427868"})
	require.NoError(t, err)

	nuevoNombre := "Lucía P. de Gómez"
	actualizado, err := e.servicio.Actualizar(creado.ID, ActualizarInvitadoDatos{Nombre: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, nuevoNombre, actualizado.Nombre)
	// El teléfono no se tocó.
	assert.Equal(t, "1138427868", actualizado.Telefono)
}

func TestActualizarCantidadRederivaElEstado(t *testing.T) {
	e := nuevoEntornoInvitados(t)
	creado, err := e.servicio.Crear(CrearInvitadoDatos{Nombre: "Lucía Pérez", CantidadInvitaciones: 2})
	require.NoError(t, err)

	acompanante, err := models.NuevoAcompanante(creado.ID, "Marta Gómez", "")
	require.NoError(t, err)
	require.NoError(t, e.acompanantes.Guardar(acompanante))

	invitado, err := e.invitados.BuscarPorID(creado.ID)
	require.NoError(t, err)
	require.NoError(t, invitado.ConfirmarAsistencia(""))
	require.NoError(t, invitado.ConfirmarAsistenciaCompleta())
	require.NoError(t, e.invitados.Actualizar(invitado))

	// Ampliar el cupo reabre la confirmación.
	cuatro := 4
	actualizado, err := e.servicio.Actualizar(creado.ID, ActualizarInvitadoDatos{CantidadInvitaciones: &cuatro})
	require.NoError(t, err)
	assert.Equal(t, models.EstadoConfirmadoIncompleto, actualizado.Estado)

	// Reducirlo al conteo actual la vuelve a cerrar.
	dos := 2
	actualizado, err = e.servicio.Actualizar(creado.ID, ActualizarInvitadoDatos{CantidadInvitaciones: &dos})
	require.NoError(t, err)
	assert.Equal(t, models.EstadoConfirmado, actualizado.Estado)
}

func TestActualizarInvitadoInexistente(t *testing.T) {
	e := nuevoEntornoInvitados(t)

	nombre := "Lucía"
	_, err := e.servicio.Actualizar("no-existe", ActualizarInvitadoDatos{Nombre: &nombre})
	assert.ErrorIs(t, err, models.ErrNoEncontrado)
}

func TestEliminarInvitadoArrastraSusAcompanantes(t *testing.T) {
	e := nuevoEntornoInvitados(t)
	creado, err := e.servicio.Crear(CrearInvitadoDatos{Nombre: "Lucía Pérez", CantidadInvitaciones: 3})
	require.NoError(t, err)

	acompanante, err := models.NuevoAcompanante(creado.ID, "Marta Gómez", "")
	require.NoError(t, err)
	require.NoError(t, e.acompanantes.Guardar(acompanante))

	require.NoError(t, e.servicio.Eliminar(creado.ID))

	_, err = e.invitados.BuscarPorID(creado.ID)
	assert.ErrorIs(t, err, models.ErrNoEncontrado)
	cantidad, _ := e.acompanantes.ContarPorInvitado(creado.ID)
	assert.Zero(t, cantidad)
}

func TestEstadisticas(t *testing.T) {
	e := nuevoEntornoInvitados(t)
	limite := time.Now().Add(48 * time.Hour)

	sembrar := func(cantidad int, preparar func(*models.Invitado)) {
		invitado, err := models.NuevoInvitado("Invitado de Prueba", "", cantidad, "", limite)
		require.NoError(t, err)
		if preparar != nil {
			preparar(invitado)
		}
		require.NoError(t, e.invitados.Guardar(invitado))
	}

	// 4 invitaciones: pendiente(1), confirmado(3), incompleto(4) con un
	// acompañante cargado, rechazado(2).
	sembrar(1, nil)
	sembrar(3, func(i *models.Invitado) {
		require.NoError(t, i.ConfirmarAsistencia(""))
		require.NoError(t, i.ConfirmarAsistenciaCompleta())
	})
	sembrar(4, func(i *models.Invitado) {
		require.NoError(t, i.ConfirmarAsistencia(""))
		acompanante, err := models.NuevoAcompanante(i.ID, "Marta Gómez", "")
		require.NoError(t, err)
		i.Acompanantes = []models.Acompanante{*acompanante}
	})
	sembrar(2, func(i *models.Invitado) {
		require.NoError(t, i.RechazarAsistencia(""))
	})

	stats, err := e.servicio.Estadisticas()
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.Pendientes)
	assert.EqualValues(t, 1, stats.Confirmados)
	assert.EqualValues(t, 1, stats.ConfirmadosIncompleto)
	assert.EqualValues(t, 1, stats.Rechazados)
	assert.EqualValues(t, 4, stats.Total)
	assert.Equal(t, 10, stats.TotalPersonas)
	// 3 del confirmado completo + titular y un acompañante del incompleto.
	assert.Equal(t, 5, stats.TotalPersonasConfirmadas)
	assert.Equal(t, 50, stats.PorcentajeConfirmacion)
}
