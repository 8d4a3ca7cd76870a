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

type PromocionService interface {
	Crear(ctx context.Context, req dto.CrearPromocionRequest) (*model.Promocion, error)
	Listar(ctx context.Context) ([]model.Promocion, error)
	ActivasPorProducto(ctx context.Context, productoID uuid.UUID) ([]model.Promocion, error)
	// MejorActiva returns the highest-percentage promotion covering asOf,
	// or nil when none applies.
	MejorActiva(ctx context.Context, productoID uuid.UUID, asOf time.Time) (*model.Promocion, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type promocionService struct {
	repo         repository.PromocionRepository
	productoRepo repository.ProductoRepository
}

func NewPromocionService(repo repository.PromocionRepository, productoRepo repository.ProductoRepository) PromocionService {
	return &promocionService{repo: repo, productoRepo: productoRepo}
}

func (s *promocionService) Crear(ctx context.Context, req dto.CrearPromocionRequest) (*model.Promocion, error) {
	productoID, err := uuid.Parse(req.IDProducto)
	if err != nil {
		return nil, fmt.Errorf("id_producto inválido: %w", err)
	}
	if _, err := s.productoRepo.FindByID(ctx, productoID); err != nil {
		if esNoEncontrado(err) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}

	inicio, err := time.ParseInLocation("2006-01-02", req.FechaInicio, zonaNegocio)
	if err != nil {
		return nil, fmt.Errorf("fecha_inicio inválida: %w", err)
	}
	fin, err := time.ParseInLocation("2006-01-02", req.FechaFin, zonaNegocio)
	if err != nil {
		return nil, fmt.Errorf("fecha_fin inválida: %w", err)
	}
	if fin.Before(inicio) {
		return nil, fmt.Errorf("fecha_fin anterior a fecha_inicio")
	}

	p := &model.Promocion{
		IDProducto:  productoID,
		Nombre:      req.Nombre,
		Porcentaje:  req.Porcentaje.Round(2),
		FechaInicio: inicio,
		// The end date covers its whole business day.
		FechaFin: finDeDia(fin),
		Activo:   true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *promocionService) Listar(ctx context.Context) ([]model.Promocion, error) {
	return s.repo.List(ctx)
}

func (s *promocionService) ActivasPorProducto(ctx context.Context, productoID uuid.UUID) ([]model.Promocion, error) {
	return s.repo.ActivasPorProducto(ctx, productoID, time.Now())
}

func (s *promocionService) MejorActiva(ctx context.Context, productoID uuid.UUID, asOf time.Time) (*model.Promocion, error) {
	candidatas, err := s.repo.ActivasPorProducto(ctx, productoID, asOf)
	if err != nil {
		return nil, err
	}
	return mejorPromocion(candidatas), nil
}

func (s *promocionService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if esNoEncontrado(err) {
			return ErrPromocionNoEncontrada
		}
		return err
	}
	return s.repo.Desactivar(ctx, id)
}

// mejorPromocion picks the maximal percentage with a deterministic tie-break
// on creation time, then id. Pure so tests can exercise it directly.
func mejorPromocion(candidatas []model.Promocion) *model.Promocion {
	if len(candidatas) == 0 {
		return nil
	}
	mejor := candidatas[0]
	for _, c := range candidatas[1:] {
		switch {
		case c.Porcentaje.GreaterThan(mejor.Porcentaje):
			mejor = c
		case c.Porcentaje.Equal(mejor.Porcentaje) && c.CreatedAt.Before(mejor.CreatedAt):
			mejor = c
		case c.Porcentaje.Equal(mejor.Porcentaje) && c.CreatedAt.Equal(mejor.CreatedAt) && c.ID.String() < mejor.ID.String():
			mejor = c
		}
	}
	return &mejor
}

// finDeDia returns 23:59:59 of t's business day so that an inclusive end
// date compares correctly against timestamps inside that day.
func finDeDia(t time.Time) time.Time {
	desde, _ := rangoDia(t)
	return desde.Add(24*time.Hour - time.Second)
}
