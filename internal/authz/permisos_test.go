package authz

import (
	"testing"

	"dalctmarket/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCheckAdministradorTieneTodo(t *testing.T) {
	az := New()
	for _, recurso := range []string{"Venta", "Caja", "Productos", "Usuarios", "ParametrosSistema"} {
		for _, accion := range []string{AccionLeer, AccionCrear, AccionActualizar, AccionEliminar} {
			assert.True(t, az.Check(model.RolAdministrador, recurso, accion), "%s %s", recurso, accion)
		}
	}
}

func TestCheckCajero(t *testing.T) {
	az := New()

	assert.True(t, az.Check(model.RolCajero, "Venta", AccionCrear))
	assert.True(t, az.Check(model.RolCajero, "Caja", AccionActualizar))
	assert.True(t, az.Check(model.RolCajero, "Productos", AccionLeer))

	assert.False(t, az.Check(model.RolCajero, "Productos", AccionCrear))
	assert.False(t, az.Check(model.RolCajero, "Usuarios", AccionLeer))
	assert.False(t, az.Check(model.RolCajero, "ParametrosSistema", AccionLeer))
	assert.False(t, az.Check(model.RolCajero, "Caja", AccionEliminar))
}

func TestCheckBodeguero(t *testing.T) {
	az := New()

	assert.True(t, az.Check(model.RolBodeguero, "Inventario", AccionActualizar))
	assert.False(t, az.Check(model.RolBodeguero, "Inventario", AccionEliminar))
	assert.False(t, az.Check(model.RolBodeguero, "Venta", AccionCrear))
	assert.False(t, az.Check(model.RolBodeguero, "Caja", AccionLeer))
}

func TestCheckRolYRecursoDesconocidos(t *testing.T) {
	az := New()

	assert.False(t, az.Check("invitado", "Venta", AccionLeer))
	assert.False(t, az.Check(model.RolAdministrador, "Recurso Inexistente", AccionLeer))
}
