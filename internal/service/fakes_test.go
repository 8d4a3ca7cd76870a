package service

import (
	"context"
	"time"

	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository fakes. They honor the same contracts as the GORM
// implementations, including gorm.ErrRecordNotFound on missing rows, so the
// services under test cannot tell the difference.

// ── CajaRepository ───────────────────────────────────────────────────────────

type fakeCajaRepo struct {
	cajas map[uuid.UUID]*model.Caja
}

func newFakeCajaRepo() *fakeCajaRepo {
	return &fakeCajaRepo{cajas: make(map[uuid.UUID]*model.Caja)}
}

func (r *fakeCajaRepo) Create(_ context.Context, c *model.Caja) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.cajas[c.ID] = c
	return nil
}

func (r *fakeCajaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Caja, error) {
	c, ok := r.cajas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCajaRepo) FindAbiertaPorUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	for _, c := range r.cajas {
		if c.IDUsuario == usuarioID && c.Estado == model.CajaAbierta {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCajaRepo) ExisteAperturaEnRango(_ context.Context, usuarioID uuid.UUID, desde, hasta time.Time) (bool, error) {
	for _, c := range r.cajas {
		if c.IDUsuario == usuarioID && !c.FechaApertura.Before(desde) && c.FechaApertura.Before(hasta) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCajaRepo) ListRango(_ context.Context, desde, hasta time.Time) ([]model.Caja, error) {
	var out []model.Caja
	for _, c := range r.cajas {
		if !c.FechaApertura.Before(desde) && c.FechaApertura.Before(hasta) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCajaRepo) ListAll(_ context.Context) ([]model.Caja, error) {
	out := make([]model.Caja, 0, len(r.cajas))
	for _, c := range r.cajas {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCajaRepo) Filtrar(_ context.Context, usuarioID *uuid.UUID, estado *string, desde, hasta *time.Time) ([]model.Caja, error) {
	var out []model.Caja
	for _, c := range r.cajas {
		if usuarioID != nil && c.IDUsuario != *usuarioID {
			continue
		}
		if estado != nil && c.Estado != *estado {
			continue
		}
		if desde != nil && c.FechaApertura.Before(*desde) {
			continue
		}
		if hasta != nil && !c.FechaApertura.Before(*hasta) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCajaRepo) Update(_ context.Context, c *model.Caja) error {
	r.cajas[c.ID] = c
	return nil
}

// ── VentaRepository ──────────────────────────────────────────────────────────

type fakeVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *fakeVentaRepo) DB() *gorm.DB { return nil }

func (r *fakeVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Detalles {
		if v.Detalles[i].ID == uuid.Nil {
			v.Detalles[i].ID = uuid.New()
		}
		v.Detalles[i].IDVenta = v.ID
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *fakeVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *fakeVentaRepo) ListRango(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if !v.FechaVenta.Before(desde) && v.FechaVenta.Before(hasta) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) ListFiltrado(_ context.Context, desde, hasta *time.Time, usuarioID *uuid.UUID, estado *string) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if desde != nil && v.FechaVenta.Before(*desde) {
			continue
		}
		if hasta != nil && !v.FechaVenta.Before(*hasta) {
			continue
		}
		if usuarioID != nil && v.IDUsuario != *usuarioID {
			continue
		}
		if estado != nil && v.Estado != *estado {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *fakeVentaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	return nil
}

func (r *fakeVentaRepo) SumEfectivoPorCaja(_ context.Context, cajaID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.ventas {
		if v.IDCaja == cajaID && v.MetodoPago == model.PagoEfectivo && v.Estado != model.VentaAnulada {
			total = total.Add(v.TotalPagar)
		}
	}
	return total, nil
}

// ── InventarioRepository ─────────────────────────────────────────────────────

type fakeInventarioRepo struct {
	porProducto map[uuid.UUID]*model.Inventario
}

func newFakeInventarioRepo() *fakeInventarioRepo {
	return &fakeInventarioRepo{porProducto: make(map[uuid.UUID]*model.Inventario)}
}

func (r *fakeInventarioRepo) FindByProducto(_ context.Context, productoID uuid.UUID) (*model.Inventario, error) {
	inv, ok := r.porProducto[productoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *fakeInventarioRepo) List(_ context.Context) ([]model.Inventario, error) {
	var out []model.Inventario
	for _, inv := range r.porProducto {
		if inv.Activo {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInventarioRepo) ListBajoStock(_ context.Context) ([]model.Inventario, error) {
	var out []model.Inventario
	for _, inv := range r.porProducto {
		if inv.Activo && inv.CantidadDisponible <= inv.CantidadMinima {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInventarioRepo) Update(_ context.Context, inv *model.Inventario) error {
	r.porProducto[inv.IDProducto] = inv
	return nil
}

// DescontarTx mirrors the guarded UPDATE: zero rows affected when the stock
// would go negative.
func (r *fakeInventarioRepo) DescontarTx(_ *gorm.DB, productoID uuid.UUID, cantidad int) (int64, error) {
	inv, ok := r.porProducto[productoID]
	if !ok || inv.CantidadDisponible < cantidad {
		return 0, nil
	}
	inv.CantidadDisponible -= cantidad
	return 1, nil
}

func (r *fakeInventarioRepo) RestaurarTx(_ *gorm.DB, productoID uuid.UUID, cantidad int) error {
	inv, ok := r.porProducto[productoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.CantidadDisponible += cantidad
	return nil
}

// ── ClienteRepository ────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *fakeClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeClienteRepo) FindByCedula(_ context.Context, cedula string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Cedula == cedula {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClienteRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Activo = false
	return nil
}

// ── ProductoRepository ───────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *fakeProductoRepo) CreateConInventario(_ context.Context, p *model.Producto, inv *model.Inventario) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	inv.IDProducto = p.ID
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProductoRepo) FindByNombre(_ context.Context, nombre string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Nombre == nombre && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductoRepo) List(_ context.Context, soloActivos bool) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if soloActivos && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductoRepo) Buscar(_ context.Context, _ string) ([]model.Producto, error) {
	return nil, nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *fakeProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = true
	return nil
}

// ── PromocionRepository ──────────────────────────────────────────────────────

type fakePromocionRepo struct {
	promos map[uuid.UUID]*model.Promocion
}

func newFakePromocionRepo() *fakePromocionRepo {
	return &fakePromocionRepo{promos: make(map[uuid.UUID]*model.Promocion)}
}

func (r *fakePromocionRepo) Create(_ context.Context, p *model.Promocion) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.promos[p.ID] = p
	return nil
}

func (r *fakePromocionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Promocion, error) {
	p, ok := r.promos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePromocionRepo) List(_ context.Context) ([]model.Promocion, error) {
	out := make([]model.Promocion, 0, len(r.promos))
	for _, p := range r.promos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePromocionRepo) ActivasPorProducto(_ context.Context, productoID uuid.UUID, ahora time.Time) ([]model.Promocion, error) {
	var out []model.Promocion
	for _, p := range r.promos {
		if p.IDProducto == productoID && p.Activo && !ahora.Before(p.FechaInicio) && !ahora.After(p.FechaFin) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePromocionRepo) Update(_ context.Context, p *model.Promocion) error {
	r.promos[p.ID] = p
	return nil
}

func (r *fakePromocionRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.promos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

// ── ParametroLookup ──────────────────────────────────────────────────────────

type fakeParametros struct {
	valores map[string]decimal.Decimal
}

func (f *fakeParametros) ValorDecimal(_ context.Context, clave string) (decimal.Decimal, bool, error) {
	v, ok := f.valores[clave]
	return v, ok, nil
}
