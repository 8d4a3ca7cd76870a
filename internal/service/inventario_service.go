package service

import (
	"context"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"
	"dalctmarket/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventarioService interface {
	// ValidarParaVenta is a read-only sufficiency check. It never mutates
	// stock; deduction happens later inside the sale transaction.
	ValidarParaVenta(ctx context.Context, productoID uuid.UUID, cantidad int) (*LineaValidada, string, error)
	Listar(ctx context.Context) ([]model.Inventario, error)
	PorProducto(ctx context.Context, productoID uuid.UUID) (*model.Inventario, error)
	Actualizar(ctx context.Context, productoID uuid.UUID, req dto.ActualizarInventarioRequest) (*model.Inventario, error)
	AlertasStock(ctx context.Context) ([]model.Inventario, error)
}

// LineaValidada is the product snapshot a sale line is priced against.
type LineaValidada struct {
	Producto *model.Producto
	Precio   decimal.Decimal
	TieneIVA bool
	Stock    int
}

type inventarioService struct {
	repo         repository.InventarioRepository
	productoRepo repository.ProductoRepository
}

func NewInventarioService(repo repository.InventarioRepository, productoRepo repository.ProductoRepository) InventarioService {
	return &inventarioService{repo: repo, productoRepo: productoRepo}
}

func (s *inventarioService) ValidarParaVenta(ctx context.Context, productoID uuid.UUID, cantidad int) (*LineaValidada, string, error) {
	p, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, MotivoProductoNoEncontrado, nil
		}
		return nil, "", err
	}
	if !p.Activo {
		return nil, MotivoProductoInactivo, nil
	}

	inv, err := s.repo.FindByProducto(ctx, productoID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, MotivoStockInsuficiente, nil
		}
		return nil, "", err
	}
	if !inv.Activo || inv.CantidadDisponible < cantidad {
		return nil, MotivoStockInsuficiente, nil
	}

	return &LineaValidada{
		Producto: p,
		Precio:   p.PrecioVenta,
		TieneIVA: p.TieneIVA,
		Stock:    inv.CantidadDisponible,
	}, "", nil
}

func (s *inventarioService) Listar(ctx context.Context) ([]model.Inventario, error) {
	return s.repo.List(ctx)
}

func (s *inventarioService) PorProducto(ctx context.Context, productoID uuid.UUID) (*model.Inventario, error) {
	inv, err := s.repo.FindByProducto(ctx, productoID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	return inv, nil
}

func (s *inventarioService) Actualizar(ctx context.Context, productoID uuid.UUID, req dto.ActualizarInventarioRequest) (*model.Inventario, error) {
	inv, err := s.repo.FindByProducto(ctx, productoID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}

	if req.CantidadDisponible != nil {
		inv.CantidadDisponible = *req.CantidadDisponible
	}
	if req.CantidadMinima != nil {
		inv.CantidadMinima = *req.CantidadMinima
	}
	inv.Activo = true

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *inventarioService) AlertasStock(ctx context.Context) ([]model.Inventario, error) {
	return s.repo.ListBajoStock(ctx)
}
