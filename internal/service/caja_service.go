package service

import (
	"context"
	"fmt"
	"time"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"
	"dalctmarket/internal/repository"

	"github.com/google/uuid"
)

type CajaService interface {
	Abrir(ctx context.Context, actor Actor, req dto.AbrirCajaRequest) (*model.Caja, error)
	Cerrar(ctx context.Context, actor Actor, cajaID uuid.UUID, req dto.CerrarCajaRequest) (*ResultadoCaja, error)
	Reabrir(ctx context.Context, actor Actor, cajaID uuid.UUID) (*ResultadoCaja, error)
	ListarHoy(ctx context.Context, actor Actor) ([]model.Caja, error)
	ListarTodas(ctx context.Context, actor Actor) ([]model.Caja, error)
	Filtrar(ctx context.Context, actor Actor, req dto.FiltrarCajasRequest) ([]model.Caja, error)
	// CajaDeHoy is called by VentaService to locate the actor's register.
	CajaDeHoy(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error)
}

// ResultadoCaja is a tagged result: Cambiado=false means the operation was
// understood but the register was already in the requested state. Callers
// must inspect the flag, it is not an error.
type ResultadoCaja struct {
	Caja     *model.Caja
	Cambiado bool
}

type cajaService struct {
	repo      repository.CajaRepository
	ventaRepo repository.VentaRepository

	// ahora is swappable in tests to simulate day boundaries.
	ahora func() time.Time
}

func NewCajaService(repo repository.CajaRepository, ventaRepo repository.VentaRepository) CajaService {
	return &cajaService{repo: repo, ventaRepo: ventaRepo, ahora: time.Now}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *cajaService) Abrir(ctx context.Context, actor Actor, req dto.AbrirCajaRequest) (*model.Caja, error) {
	// One open register per user, across all days. The partial unique index
	// on (id_usuario) WHERE estado='ABIERTA' makes this race-free at the DB.
	if existing, err := s.repo.FindAbiertaPorUsuario(ctx, actor.ID); err == nil && existing != nil {
		return nil, ErrCajaAbiertaExistente
	} else if err != nil && !esNoEncontrado(err) {
		return nil, err
	}

	ahora := s.ahora()
	desde, hasta := rangoDia(ahora)
	yaAbrio, err := s.repo.ExisteAperturaEnRango(ctx, actor.ID, desde, hasta)
	if err != nil {
		return nil, err
	}
	if yaAbrio {
		return nil, ErrCajaYaAbiertaHoy
	}

	monto := req.MontoInicialDeclarado.Round(2)
	caja := &model.Caja{
		IDUsuario:             actor.ID,
		FechaApertura:         ahora,
		MontoInicialDeclarado: monto,
		Estado:                model.CajaAbierta,
		Detalle:               fmt.Sprintf("Apertura por %s; montoInicialDeclarado: %s", actor.etiqueta(), monto.StringFixed(2)),
	}
	if err := s.repo.Create(ctx, caja); err != nil {
		return nil, err
	}
	return caja, nil
}

// ── Cerrar ────────────────────────────────────────────────────────────────────
// Reconciliation: MontoCierreSistema sums the register's cash sales that were
// not annulled; Diferencia = declarado − sistema.

func (s *cajaService) Cerrar(ctx context.Context, actor Actor, cajaID uuid.UUID, req dto.CerrarCajaRequest) (*ResultadoCaja, error) {
	caja, err := s.repo.FindByID(ctx, cajaID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrCajaNoEncontrada
		}
		return nil, err
	}

	if caja.Estado == model.CajaCerrada {
		return &ResultadoCaja{Caja: caja, Cambiado: false}, nil
	}

	ahora := s.ahora()
	if !actor.EsAdmin() {
		if caja.IDUsuario != actor.ID {
			return nil, ErrSinPermiso
		}
		if !mismoDia(caja.FechaApertura, ahora) {
			return nil, ErrDiaDistinto
		}
	}

	sistema, err := s.ventaRepo.SumEfectivoPorCaja(ctx, caja.ID)
	if err != nil {
		return nil, err
	}
	declarado := req.MontoCierreDeclarado.Round(2)
	diferencia := declarado.Sub(sistema)

	caja.Estado = model.CajaCerrada
	caja.FechaCierre = &ahora
	caja.MontoCierreDeclarado = &declarado
	caja.MontoCierreSistema = &sistema
	caja.Diferencia = &diferencia
	caja.Detalle += fmt.Sprintf(" | Cierre por %s; montoCierreDeclarado: %s; montoCierreSistema: %s; diferencia: %s",
		actor.etiqueta(), declarado.StringFixed(2), sistema.StringFixed(2), diferencia.StringFixed(2))

	if err := s.repo.Update(ctx, caja); err != nil {
		return nil, err
	}
	return &ResultadoCaja{Caja: caja, Cambiado: true}, nil
}

// ── Reabrir ───────────────────────────────────────────────────────────────────

func (s *cajaService) Reabrir(ctx context.Context, actor Actor, cajaID uuid.UUID) (*ResultadoCaja, error) {
	if !actor.EsAdmin() {
		return nil, ErrSinPermiso
	}

	caja, err := s.repo.FindByID(ctx, cajaID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrCajaNoEncontrada
		}
		return nil, err
	}

	if caja.Estado != model.CajaCerrada {
		return &ResultadoCaja{Caja: caja, Cambiado: false}, nil
	}

	caja.Estado = model.CajaAbierta
	caja.FechaCierre = nil
	caja.MontoCierreDeclarado = nil
	caja.MontoCierreSistema = nil
	caja.Diferencia = nil
	caja.Detalle += fmt.Sprintf(" | Reapertura por %s", actor.etiqueta())

	if err := s.repo.Update(ctx, caja); err != nil {
		return nil, err
	}
	return &ResultadoCaja{Caja: caja, Cambiado: true}, nil
}

// ── Listados ──────────────────────────────────────────────────────────────────

func (s *cajaService) ListarHoy(ctx context.Context, actor Actor) ([]model.Caja, error) {
	desde, hasta := rangoDia(s.ahora())
	cajas, err := s.repo.ListRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	if actor.EsAdmin() {
		return cajas, nil
	}
	propias := make([]model.Caja, 0, len(cajas))
	for _, c := range cajas {
		if c.IDUsuario == actor.ID {
			propias = append(propias, c)
		}
	}
	return propias, nil
}

func (s *cajaService) ListarTodas(ctx context.Context, actor Actor) ([]model.Caja, error) {
	if !actor.EsAdmin() {
		return nil, ErrSinPermiso
	}
	return s.repo.ListAll(ctx)
}

func (s *cajaService) Filtrar(ctx context.Context, actor Actor, req dto.FiltrarCajasRequest) ([]model.Caja, error) {
	if !actor.EsAdmin() {
		return nil, ErrSinPermiso
	}

	var usuarioID *uuid.UUID
	if req.IDUsuario != nil {
		id, err := uuid.Parse(*req.IDUsuario)
		if err != nil {
			return nil, fmt.Errorf("id_usuario inválido: %w", err)
		}
		usuarioID = &id
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

	return s.repo.Filtrar(ctx, usuarioID, req.Estado, desde, hasta)
}

// CajaDeHoy returns the actor's register opened today in any state, the open
// one winning. ErrSinCajaHoy when no register was opened today at all;
// ErrCajaCerrada when one exists but none is open.
func (s *cajaService) CajaDeHoy(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	abierta, err := s.repo.FindAbiertaPorUsuario(ctx, usuarioID)
	if err == nil && abierta != nil && mismoDia(abierta.FechaApertura, s.ahora()) {
		return abierta, nil
	}
	if err != nil && !esNoEncontrado(err) {
		return nil, err
	}

	desde, hasta := rangoDia(s.ahora())
	yaAbrio, err := s.repo.ExisteAperturaEnRango(ctx, usuarioID, desde, hasta)
	if err != nil {
		return nil, err
	}
	if !yaAbrio {
		return nil, ErrSinCajaHoy
	}
	return nil, ErrCajaCerrada
}
