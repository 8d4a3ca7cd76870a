package service

import (
	"context"
	"testing"
	"time"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ventaFixture wires the sale pipeline over in-memory fakes with an open
// register and a registered client, ready to sell.
type ventaFixture struct {
	svc       *ventaService
	cajaSvc   *cajaService
	ventas    *fakeVentaRepo
	cajas     *fakeCajaRepo
	inv       *fakeInventarioRepo
	productos *fakeProductoRepo
	promos    *fakePromocionRepo
	params    *fakeParametros

	cliente *model.Cliente
	caja    *model.Caja
}

func newVentaFixture(t *testing.T) *ventaFixture {
	t.Helper()

	f := &ventaFixture{
		ventas:    newFakeVentaRepo(),
		cajas:     newFakeCajaRepo(),
		inv:       newFakeInventarioRepo(),
		productos: newFakeProductoRepo(),
		promos:    newFakePromocionRepo(),
		params: &fakeParametros{valores: map[string]decimal.Decimal{
			"IVA": decimal.NewFromInt(15),
		}},
	}
	clientes := newFakeClienteRepo()

	f.cliente = &model.Cliente{Cedula: "0912345678", Nombre: "María", Apellido: "Pérez", Activo: true}
	require.NoError(t, clientes.Create(context.Background(), f.cliente))

	f.cajaSvc = newCajaServiceParaTest(f.cajas, f.ventas, diaBase)
	caja, err := f.cajaSvc.Abrir(context.Background(), cajero, dto.AbrirCajaRequest{
		MontoInicialDeclarado: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	f.caja = caja

	inventarioSvc := NewInventarioService(f.inv, f.productos)
	promocionSvc := NewPromocionService(f.promos, f.productos)

	f.svc = NewVentaService(f.ventas, f.cajas, clientes, f.inv,
		inventarioSvc, promocionSvc, f.cajaSvc, f.params).(*ventaService)
	f.svc.ahora = func() time.Time { return diaBase }
	return f
}

func (f *ventaFixture) agregarProducto(t *testing.T, nombre, precio string, tieneIVA bool, stock int) uuid.UUID {
	t.Helper()
	p := &model.Producto{
		Nombre:      nombre,
		PrecioVenta: decimal.RequireFromString(precio),
		TieneIVA:    tieneIVA,
		Activo:      true,
	}
	inv := &model.Inventario{CantidadDisponible: stock, Activo: true}
	require.NoError(t, f.productos.CreateConInventario(context.Background(), p, inv))
	f.inv.porProducto[p.ID] = inv
	return p.ID
}

func (f *ventaFixture) agregarPromocion(t *testing.T, productoID uuid.UUID, porcentaje string) {
	t.Helper()
	inicio, fin := rangoDia(diaBase)
	require.NoError(t, f.promos.Create(context.Background(), &model.Promocion{
		IDProducto:  productoID,
		Nombre:      "Promo " + porcentaje,
		Porcentaje:  decimal.RequireFromString(porcentaje),
		FechaInicio: inicio,
		FechaFin:    fin.Add(-time.Second),
		Activo:      true,
	}))
}

func (f *ventaFixture) crearVenta(productos ...dto.DetalleVentaRequest) (*model.Venta, error) {
	return f.svc.Crear(context.Background(), cajero, dto.CrearVentaRequest{
		IDCliente:        f.cliente.ID.String(),
		MetodoPago:       model.PagoEfectivo,
		DescuentoGeneral: decimal.RequireFromString("5"),
		Detalles:         productos,
	})
}

// Mixed basket: one taxable line without promotion, one non-taxable line with
// a 25% promotion, 5% general discount, 15% tax rate. The proportional rule
// keeps the general discount of non-taxable goods out of the tax base.
func TestCrearVentaTotales(t *testing.T) {
	f := newVentaFixture(t)
	conIVA := f.agregarProducto(t, "Atún", "2.50", true, 10)
	sinIVA := f.agregarProducto(t, "Pan", "1.80", false, 10)
	f.agregarPromocion(t, sinIVA, "25")

	venta, err := f.crearVenta(
		dto.DetalleVentaRequest{IDProducto: conIVA.String(), Cantidad: 1},
		dto.DetalleVentaRequest{IDProducto: sinIVA.String(), Cantidad: 2},
	)
	require.NoError(t, err)

	assert.True(t, venta.Subtotal.Equal(decimal.RequireFromString("6.10")), "subtotal: %s", venta.Subtotal)
	assert.True(t, venta.TotalDescuento.Equal(decimal.RequireFromString("1.16")), "total descuento: %s", venta.TotalDescuento)
	assert.True(t, venta.TotalIVA.Equal(decimal.RequireFromString("0.36")), "total IVA: %s", venta.TotalIVA)
	assert.True(t, venta.TotalPagar.Equal(decimal.RequireFromString("5.30")), "total a pagar: %s", venta.TotalPagar)
	assert.True(t, venta.BaseIVA.Equal(decimal.NewFromInt(15)), "tasa snapshot: %s", venta.BaseIVA)
	assert.Equal(t, model.VentaCompletada, venta.Estado)
	assert.Equal(t, f.caja.ID, venta.IDCaja)

	require.Len(t, venta.Detalles, 2)
	assert.True(t, venta.Detalles[0].ValorDescuento.IsZero())
	assert.True(t, venta.Detalles[1].ValorDescuento.Equal(decimal.RequireFromString("0.90")))
	assert.NotNil(t, venta.Detalles[1].IDPromocion)

	// Stock was deducted inside the same transaction.
	assert.Equal(t, 9, f.inv.porProducto[conIVA].CantidadDisponible)
	assert.Equal(t, 8, f.inv.porProducto[sinIVA].CantidadDisponible)
}

func TestCrearVentaSinParametroIVA(t *testing.T) {
	f := newVentaFixture(t)
	delete(f.params.valores, "IVA")
	id := f.agregarProducto(t, "Atún", "2.50", true, 10)

	venta, err := f.crearVenta(dto.DetalleVentaRequest{IDProducto: id.String(), Cantidad: 1})
	require.NoError(t, err)
	assert.True(t, venta.TotalIVA.IsZero())
	assert.True(t, venta.BaseIVA.IsZero())
}

func TestCrearVentaDetallesInvalidos(t *testing.T) {
	f := newVentaFixture(t)
	ok := f.agregarProducto(t, "Atún", "2.50", true, 10)
	inactivo := f.agregarProducto(t, "Viejo", "1.00", true, 10)
	require.NoError(t, f.productos.SoftDelete(context.Background(), inactivo))
	sinStock := f.agregarProducto(t, "Agotado", "3.00", true, 1)
	inexistente := uuid.New()

	_, err := f.crearVenta(
		dto.DetalleVentaRequest{IDProducto: ok.String(), Cantidad: 1},
		dto.DetalleVentaRequest{IDProducto: inactivo.String(), Cantidad: 1},
		dto.DetalleVentaRequest{IDProducto: sinStock.String(), Cantidad: 5},
		dto.DetalleVentaRequest{IDProducto: inexistente.String(), Cantidad: 1},
	)

	var verr *ErrorValidacionDetalles
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Detalles, 3)
	assert.Equal(t, MotivoProductoInactivo, verr.Detalles[0].Motivo)
	assert.Equal(t, MotivoStockInsuficiente, verr.Detalles[1].Motivo)
	assert.Equal(t, MotivoProductoNoEncontrado, verr.Detalles[2].Motivo)

	// Nothing was persisted, not even the valid line.
	assert.Empty(t, f.ventas.ventas)
	assert.Equal(t, 10, f.inv.porProducto[ok].CantidadDisponible)
}

func TestCrearVentaSinCaja(t *testing.T) {
	f := newVentaFixture(t)
	id := f.agregarProducto(t, "Atún", "2.50", true, 10)

	otro := Actor{ID: uuid.New(), Nombre: "Otro", Rol: model.RolCajero}
	_, err := f.svc.Crear(context.Background(), otro, dto.CrearVentaRequest{
		IDCliente:  f.cliente.ID.String(),
		MetodoPago: model.PagoEfectivo,
		Detalles:   []dto.DetalleVentaRequest{{IDProducto: id.String(), Cantidad: 1}},
	})
	assert.ErrorIs(t, err, ErrSinCajaHoy)

	// Same day with the register already closed.
	_, err = f.cajaSvc.Cerrar(context.Background(), cajero, f.caja.ID, dto.CerrarCajaRequest{MontoCierreDeclarado: decimal.Zero})
	require.NoError(t, err)
	_, err = f.crearVenta(dto.DetalleVentaRequest{IDProducto: id.String(), Cantidad: 1})
	assert.ErrorIs(t, err, ErrCajaCerrada)
}

func TestCrearVentaDescuentoFueraDeRango(t *testing.T) {
	f := newVentaFixture(t)
	id := f.agregarProducto(t, "Atún", "2.50", true, 10)

	for _, descuento := range []string{"-1", "100.01"} {
		_, err := f.svc.Crear(context.Background(), cajero, dto.CrearVentaRequest{
			IDCliente:        f.cliente.ID.String(),
			MetodoPago:       model.PagoEfectivo,
			DescuentoGeneral: decimal.RequireFromString(descuento),
			Detalles:         []dto.DetalleVentaRequest{{IDProducto: id.String(), Cantidad: 1}},
		})
		assert.ErrorIs(t, err, ErrDescuentoInvalido, "descuento %s", descuento)
	}
}

func TestCrearVentaClienteInexistente(t *testing.T) {
	f := newVentaFixture(t)
	id := f.agregarProducto(t, "Atún", "2.50", true, 10)

	_, err := f.svc.Crear(context.Background(), cajero, dto.CrearVentaRequest{
		IDCliente:  uuid.NewString(),
		MetodoPago: model.PagoEfectivo,
		Detalles:   []dto.DetalleVentaRequest{{IDProducto: id.String(), Cantidad: 1}},
	})
	assert.ErrorIs(t, err, ErrClienteNoEncontrado)
}

func TestAnularVentaRestauraStock(t *testing.T) {
	f := newVentaFixture(t)
	id := f.agregarProducto(t, "Atún", "2.50", true, 10)

	venta, err := f.crearVenta(dto.DetalleVentaRequest{IDProducto: id.String(), Cantidad: 3})
	require.NoError(t, err)
	require.Equal(t, 7, f.inv.porProducto[id].CantidadDisponible)

	res, err := f.svc.Anular(context.Background(), cajero, venta.ID)
	require.NoError(t, err)
	require.True(t, res.Cambiado)
	assert.Equal(t, model.VentaAnulada, res.Venta.Estado)
	assert.Equal(t, 10, f.inv.porProducto[id].CantidadDisponible)

	// Repeat annulment is acknowledged and stock is not restored twice.
	res, err = f.svc.Anular(context.Background(), cajero, venta.ID)
	require.NoError(t, err)
	assert.False(t, res.Cambiado)
	assert.Equal(t, 10, f.inv.porProducto[id].CantidadDisponible)
}

func TestAnularVentaDeOtroDia(t *testing.T) {
	f := newVentaFixture(t)
	id := f.agregarProducto(t, "Atún", "2.50", true, 10)

	venta, err := f.crearVenta(dto.DetalleVentaRequest{IDProducto: id.String(), Cantidad: 1})
	require.NoError(t, err)

	f.svc.ahora = func() time.Time { return diaBase.AddDate(0, 0, 1) }
	_, err = f.svc.Anular(context.Background(), cajero, venta.ID)
	assert.ErrorIs(t, err, ErrVentaNoEsDeHoy)

	// Not even the admin annuls past-day sales.
	_, err = f.svc.Anular(context.Background(), admin, venta.ID)
	assert.ErrorIs(t, err, ErrVentaNoEsDeHoy)
}

func TestAnularVentaAjena(t *testing.T) {
	f := newVentaFixture(t)
	id := f.agregarProducto(t, "Atún", "2.50", true, 10)

	venta, err := f.crearVenta(dto.DetalleVentaRequest{IDProducto: id.String(), Cantidad: 1})
	require.NoError(t, err)

	otro := Actor{ID: uuid.New(), Nombre: "Otro", Rol: model.RolCajero}
	_, err = f.svc.Anular(context.Background(), otro, venta.ID)
	assert.ErrorIs(t, err, ErrSinPermiso)

	res, err := f.svc.Anular(context.Background(), admin, venta.ID)
	require.NoError(t, err)
	assert.True(t, res.Cambiado)
}

func TestAnularVentaConCajaCerrada(t *testing.T) {
	f := newVentaFixture(t)
	id := f.agregarProducto(t, "Atún", "2.50", true, 10)

	venta, err := f.crearVenta(dto.DetalleVentaRequest{IDProducto: id.String(), Cantidad: 1})
	require.NoError(t, err)
	_, err = f.cajaSvc.Cerrar(context.Background(), cajero, f.caja.ID, dto.CerrarCajaRequest{MontoCierreDeclarado: decimal.Zero})
	require.NoError(t, err)

	_, err = f.svc.Anular(context.Background(), cajero, venta.ID)
	assert.ErrorIs(t, err, ErrCajaNoAbierta)

	// The admin overrides the open-register requirement.
	res, err := f.svc.Anular(context.Background(), admin, venta.ID)
	require.NoError(t, err)
	assert.True(t, res.Cambiado)
}

func TestAnularVentaInexistente(t *testing.T) {
	f := newVentaFixture(t)
	_, err := f.svc.Anular(context.Background(), cajero, uuid.New())
	assert.ErrorIs(t, err, ErrVentaNoEncontrada)
}

func TestListarHistoricoSoloAdmin(t *testing.T) {
	f := newVentaFixture(t)
	_, err := f.svc.ListarHistorico(context.Background(), cajero, dto.HistoricoVentasRequest{})
	assert.ErrorIs(t, err, ErrSinPermiso)

	_, err = f.svc.ListarHistorico(context.Background(), admin, dto.HistoricoVentasRequest{})
	assert.NoError(t, err)
}

// The best active promotion is applied per line; an expired one is ignored.
func TestCrearVentaEligeMejorPromocion(t *testing.T) {
	f := newVentaFixture(t)
	id := f.agregarProducto(t, "Atún", "10.00", false, 10)
	f.agregarPromocion(t, id, "10")
	f.agregarPromocion(t, id, "20")

	venta, err := f.svc.Crear(context.Background(), cajero, dto.CrearVentaRequest{
		IDCliente:  f.cliente.ID.String(),
		MetodoPago: model.PagoEfectivo,
		Detalles:   []dto.DetalleVentaRequest{{IDProducto: id.String(), Cantidad: 1}},
	})
	require.NoError(t, err)
	require.Len(t, venta.Detalles, 1)
	assert.True(t, venta.Detalles[0].ValorDescuento.Equal(decimal.RequireFromString("2.00")))
	assert.True(t, venta.TotalPagar.Equal(decimal.RequireFromString("8.00")))
}
