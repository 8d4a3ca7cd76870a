// Package authz resolves (rol, recurso, acción) → permitido against a static
// permission table. It is consumed as a capability check by the router; no
// other package re-derives permissions from roles.
package authz

import "dalctmarket/internal/model"

// Acciones are HTTP-verb shaped, matching how routes are registered.
const (
	AccionLeer       = "GET"
	AccionCrear      = "POST"
	AccionActualizar = "PUT"
	AccionEliminar   = "DELETE"
)

// todas grants every action on a resource.
const todas = "ALL"

// Recursos known to the permission table. The router passes these to the
// permission middleware; Check receives the same strings.
const (
	RecursoParametros  = "ParametrosSistema"
	RecursoUsuarios    = "Usuarios"
	RecursoProductos   = "Productos"
	RecursoInventario  = "Inventario"
	RecursoPromocion   = "Promocion"
	RecursoVenta       = "Venta"
	RecursoClientes    = "Cliente"
	RecursoCaja        = "Caja"
	RecursoProveedores = "Proveedores"
	RecursoCategorias  = "Categorias"
)

// Autorizador is the capability check injected into the HTTP layer.
type Autorizador interface {
	Check(rol, recurso, accion string) bool
}

type tablaPermisos map[string]map[string][]string

// permisos: recurso → rol → acciones permitidas.
var permisos = tablaPermisos{
	RecursoParametros: {
		model.RolAdministrador: {todas},
	},
	RecursoUsuarios: {
		model.RolAdministrador: {todas},
	},
	RecursoProductos: {
		model.RolAdministrador: {todas},
		model.RolBodeguero:     {todas},
		model.RolCajero:        {AccionLeer},
	},
	RecursoInventario: {
		model.RolAdministrador: {todas},
		model.RolBodeguero:     {AccionLeer, AccionCrear, AccionActualizar},
		model.RolCajero:        {AccionLeer},
	},
	RecursoPromocion: {
		model.RolAdministrador: {todas},
		model.RolCajero:        {AccionLeer},
	},
	RecursoVenta: {
		model.RolAdministrador: {todas},
		model.RolCajero:        {todas},
	},
	RecursoClientes: {
		model.RolAdministrador: {todas},
		model.RolCajero:        {todas},
	},
	RecursoCaja: {
		model.RolAdministrador: {todas},
		model.RolCajero:        {AccionLeer, AccionCrear, AccionActualizar},
	},
	RecursoProveedores: {
		model.RolAdministrador: {todas},
		model.RolBodeguero:     {AccionLeer},
	},
	RecursoCategorias: {
		model.RolAdministrador: {todas},
		model.RolBodeguero:     {AccionLeer},
		model.RolCajero:        {AccionLeer},
	},
}

type autorizadorEstatico struct {
	tabla tablaPermisos
}

// New returns the Autorizador backed by the static table above.
func New() Autorizador {
	return &autorizadorEstatico{tabla: permisos}
}

func (a *autorizadorEstatico) Check(rol, recurso, accion string) bool {
	acciones, ok := a.tabla[recurso][rol]
	if !ok {
		return false
	}
	for _, permitida := range acciones {
		if permitida == todas || permitida == accion {
			return true
		}
	}
	return false
}
