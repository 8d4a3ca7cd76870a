package service

import (
	"context"
	"fmt"
	"time"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"
	"dalctmarket/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	Crear(ctx context.Context, actor Actor, req dto.CrearVentaRequest) (*model.Venta, error)
	Anular(ctx context.Context, actor Actor, ventaID uuid.UUID) (*ResultadoVenta, error)
	PorID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	ListarHoy(ctx context.Context, actor Actor) ([]model.Venta, error)
	ListarHistorico(ctx context.Context, actor Actor, req dto.HistoricoVentasRequest) ([]model.Venta, error)
}

// ResultadoVenta mirrors ResultadoCaja: Cambiado=false when the sale was
// already annulled. Not an error; stock is untouched on the repeat call.
type ResultadoVenta struct {
	Venta    *model.Venta
	Cambiado bool
}

type ventaService struct {
	repo        repository.VentaRepository
	cajaRepo    repository.CajaRepository
	clienteRepo repository.ClienteRepository
	invRepo     repository.InventarioRepository
	inventario  InventarioService
	promociones PromocionService
	caja        CajaService
	parametros  ParametroLookup

	// ahora is swappable in tests to simulate day boundaries.
	ahora func() time.Time
}

func NewVentaService(
	repo repository.VentaRepository,
	cajaRepo repository.CajaRepository,
	clienteRepo repository.ClienteRepository,
	invRepo repository.InventarioRepository,
	inventario InventarioService,
	promociones PromocionService,
	caja CajaService,
	parametros ParametroLookup,
) VentaService {
	return &ventaService{
		repo:        repo,
		cajaRepo:    cajaRepo,
		clienteRepo: clienteRepo,
		invRepo:     invRepo,
		inventario:  inventario,
		promociones: promociones,
		caja:        caja,
		parametros:  parametros,
		ahora:       time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

var cien = decimal.NewFromInt(100)

// ── Crear ─────────────────────────────────────────────────────────────────────
// Pipeline:
//  1. cliente exists
//  2. actor owns today's register and it is open
//  3. descuento general within [0,100]
//  4. every line validated against stock, failures accumulated
//  5. totals computed with 2-decimal rounding at each step
//  6. venta + detalles + stock deduction in ONE transaction

func (s *ventaService) Crear(ctx context.Context, actor Actor, req dto.CrearVentaRequest) (*model.Venta, error) {
	clienteID, err := uuid.Parse(req.IDCliente)
	if err != nil {
		return nil, fmt.Errorf("id_cliente inválido: %w", err)
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		if esNoEncontrado(err) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}

	caja, err := s.caja.CajaDeHoy(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	descuentoGeneral := req.DescuentoGeneral
	if descuentoGeneral.IsNegative() || descuentoGeneral.GreaterThan(cien) {
		return nil, ErrDescuentoInvalido
	}

	ahora := s.ahora()

	// Per-line validation and pricing. Failures are accumulated so the
	// caller sees every bad line in one round trip; nothing is persisted
	// if any line fails.
	type lineaCalculada struct {
		producto       *model.Producto
		promocion      *model.Promocion
		precio         decimal.Decimal
		cantidad       int
		subtotal       decimal.Decimal
		valorDescuento decimal.Decimal
	}

	var lineas []lineaCalculada
	var invalidas []DetalleInvalido
	subtotal := decimal.Zero
	totalPromos := decimal.Zero
	baseGravable := decimal.Zero

	for _, det := range req.Detalles {
		productoID, err := uuid.Parse(det.IDProducto)
		if err != nil {
			invalidas = append(invalidas, DetalleInvalido{IDProducto: det.IDProducto, Motivo: MotivoProductoNoEncontrado})
			continue
		}

		linea, motivo, err := s.inventario.ValidarParaVenta(ctx, productoID, det.Cantidad)
		if err != nil {
			return nil, err
		}
		if motivo != "" {
			invalidas = append(invalidas, DetalleInvalido{IDProducto: det.IDProducto, Motivo: motivo})
			continue
		}

		subtotalLinea := linea.Precio.Mul(decimal.NewFromInt(int64(det.Cantidad))).Round(2)

		promo, err := s.promociones.MejorActiva(ctx, productoID, ahora)
		if err != nil {
			return nil, err
		}
		descuentoPromo := decimal.Zero
		if promo != nil {
			descuentoPromo = promo.Porcentaje.Div(cien).Mul(subtotalLinea).Round(2)
		}

		subtotal = subtotal.Add(subtotalLinea)
		totalPromos = totalPromos.Add(descuentoPromo)
		if linea.TieneIVA {
			baseGravable = baseGravable.Add(subtotalLinea.Sub(descuentoPromo))
		}

		lineas = append(lineas, lineaCalculada{
			producto:       linea.Producto,
			promocion:      promo,
			precio:         linea.Precio,
			cantidad:       det.Cantidad,
			subtotal:       subtotalLinea,
			valorDescuento: descuentoPromo,
		})
	}

	if len(invalidas) > 0 {
		return nil, &ErrorValidacionDetalles{Detalles: invalidas}
	}

	// Aggregates, rounded at each computation point. The proportional term
	// keeps tax off the share of the general discount attributable to
	// non-taxable goods.
	despuesPromos := subtotal.Sub(totalPromos)
	montoDescuentoGeneral := descuentoGeneral.Div(cien).Mul(despuesPromos).Round(2)
	totalDescuento := totalPromos.Add(montoDescuentoGeneral)

	tasaIVA := decimal.Zero
	if v, ok, err := s.parametros.ValorDecimal(ctx, "IVA"); err != nil {
		return nil, err
	} else if ok {
		tasaIVA = v.Div(cien)
	}

	baseTrasGeneral := decimal.Zero
	if despuesPromos.IsPositive() {
		baseTrasGeneral = baseGravable.Sub(baseGravable.Div(despuesPromos).Mul(montoDescuentoGeneral))
	}
	totalIVA := baseTrasGeneral.Mul(tasaIVA).Round(2)
	totalPagar := despuesPromos.Sub(montoDescuentoGeneral).Add(totalIVA).Round(2)

	venta := &model.Venta{
		IDCaja:           caja.ID,
		IDUsuario:        actor.ID,
		IDCliente:        clienteID,
		FechaVenta:       ahora,
		Subtotal:         subtotal,
		DescuentoGeneral: descuentoGeneral,
		TotalDescuento:   totalDescuento,
		BaseIVA:          tasaIVA.Mul(cien), // rate snapshot, stored as percentage
		TotalIVA:         totalIVA,
		TotalPagar:       totalPagar,
		MetodoPago:       req.MetodoPago,
		Estado:           model.VentaCompletada,
	}
	for _, l := range lineas {
		detalle := model.DetalleVenta{
			IDProducto:     l.producto.ID,
			PrecioUnitario: l.precio,
			Cantidad:       l.cantidad,
			Subtotal:       l.subtotal,
			ValorDescuento: l.valorDescuento,
		}
		if l.promocion != nil {
			id := l.promocion.ID
			detalle.IDPromocion = &id
		}
		venta.Detalles = append(venta.Detalles, detalle)
	}

	// Sale write and stock deduction commit or roll back together. The
	// guarded deduction turns a concurrent overdraw into a rollback.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, venta); err != nil {
			return err
		}
		for _, l := range lineas {
			afectadas, err := s.invRepo.DescontarTx(tx, l.producto.ID, l.cantidad)
			if err != nil {
				return err
			}
			if afectadas == 0 {
				return &ErrorValidacionDetalles{Detalles: []DetalleInvalido{
					{IDProducto: l.producto.ID.String(), Motivo: MotivoStockInsuficiente},
				}}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return venta, nil
}

// ── Anular ────────────────────────────────────────────────────────────────────

func (s *ventaService) Anular(ctx context.Context, actor Actor, ventaID uuid.UUID) (*ResultadoVenta, error) {
	venta, err := s.repo.FindByID(ctx, ventaID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}

	if venta.Estado == model.VentaAnulada {
		return &ResultadoVenta{Venta: venta, Cambiado: false}, nil
	}

	if !mismoDia(venta.FechaVenta, s.ahora()) {
		return nil, ErrVentaNoEsDeHoy
	}

	if !actor.EsAdmin() {
		if venta.IDUsuario != actor.ID {
			return nil, ErrSinPermiso
		}
		caja, err := s.cajaRepo.FindByID(ctx, venta.IDCaja)
		if err != nil {
			if esNoEncontrado(err) {
				return nil, ErrCajaNoEncontrada
			}
			return nil, err
		}
		if caja.Estado != model.CajaAbierta {
			return nil, ErrCajaNoAbierta
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateEstadoTx(tx, venta.ID, model.VentaAnulada); err != nil {
			return err
		}
		for _, d := range venta.Detalles {
			if err := s.invRepo.RestaurarTx(tx, d.IDProducto, d.Cantidad); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	venta.Estado = model.VentaAnulada
	return &ResultadoVenta{Venta: venta, Cambiado: true}, nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *ventaService) PorID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}
	return venta, nil
}

func (s *ventaService) ListarHoy(ctx context.Context, actor Actor) ([]model.Venta, error) {
	desde, hasta := rangoDia(s.ahora())
	ventas, err := s.repo.ListRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	if actor.EsAdmin() {
		return ventas, nil
	}
	propias := make([]model.Venta, 0, len(ventas))
	for _, v := range ventas {
		if v.IDUsuario == actor.ID {
			propias = append(propias, v)
		}
	}
	return propias, nil
}

func (s *ventaService) ListarHistorico(ctx context.Context, actor Actor, req dto.HistoricoVentasRequest) ([]model.Venta, error) {
	if !actor.EsAdmin() {
		return nil, ErrSinPermiso
	}

	var desde, hasta *time.Time
	if req.FechaDesde != nil {
		d, err := time.ParseInLocation("2006-01-02", *req.FechaDesde, zonaNegocio)
		if err != nil {
			return nil, fmt.Errorf("fecha_desde inválida: %w", err)
		}
		desde = &d
	}
	if req.FechaHasta != nil {
		h, err := time.ParseInLocation("2006-01-02", *req.FechaHasta, zonaNegocio)
		if err != nil {
			return nil, fmt.Errorf("fecha_hasta inválida: %w", err)
		}
		exclusiva := h.AddDate(0, 0, 1)
		hasta = &exclusiva
	}

	var usuarioID *uuid.UUID
	if req.IDUsuario != nil {
		id, err := uuid.Parse(*req.IDUsuario)
		if err != nil {
			return nil, fmt.Errorf("id_usuario inválido: %w", err)
		}
		usuarioID = &id
	}

	return s.repo.ListFiltrado(ctx, desde, hasta, usuarioID, req.Estado)
}
