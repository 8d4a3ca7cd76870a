package service

import (
	"context"
	"fmt"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"
	"dalctmarket/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	PorID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	Listar(ctx context.Context, soloActivos bool) ([]model.Producto, error)
	Buscar(ctx context.Context, termino string) ([]model.Producto, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	proveedorRepo repository.ProveedorRepository
}

func NewProductoService(
	repo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	proveedorRepo repository.ProveedorRepository,
) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo, proveedorRepo: proveedorRepo}
}

// Crear inserts the product together with its inventario row; a product
// without a ledger entry cannot be sold.
func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	categoriaID, err := uuid.Parse(req.IDCategoria)
	if err != nil {
		return nil, fmt.Errorf("id_categoria inválido: %w", err)
	}
	proveedorID, err := uuid.Parse(req.IDProveedor)
	if err != nil {
		return nil, fmt.Errorf("id_proveedor inválido: %w", err)
	}
	if _, err := s.categoriaRepo.FindByID(ctx, categoriaID); err != nil {
		return nil, fmt.Errorf("categoría no encontrada")
	}
	if _, err := s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
		return nil, fmt.Errorf("proveedor no encontrado")
	}

	tieneIVA := true
	if req.TieneIVA != nil {
		tieneIVA = *req.TieneIVA
	}

	p := &model.Producto{
		IDCategoria:  categoriaID,
		IDProveedor:  proveedorID,
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		PrecioVenta:  req.PrecioVenta.Round(2),
		PrecioCompra: req.PrecioCompra.Round(2),
		TieneIVA:     tieneIVA,
		Activo:       true,
	}
	inv := &model.Inventario{Activo: true}
	if req.CantidadDisponible != nil {
		inv.CantidadDisponible = *req.CantidadDisponible
	}
	if req.CantidadMinima != nil {
		inv.CantidadMinima = *req.CantidadMinima
	}

	if err := s.repo.CreateConInventario(ctx, p, inv); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) PorID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *productoService) Listar(ctx context.Context, soloActivos bool) ([]model.Producto, error) {
	return s.repo.List(ctx, soloActivos)
}

func (s *productoService) Buscar(ctx context.Context, termino string) ([]model.Producto, error) {
	return s.repo.Buscar(ctx, termino)
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}

	if req.IDCategoria != nil {
		cid, err := uuid.Parse(*req.IDCategoria)
		if err != nil {
			return nil, fmt.Errorf("id_categoria inválido: %w", err)
		}
		p.IDCategoria = cid
	}
	if req.IDProveedor != nil {
		pid, err := uuid.Parse(*req.IDProveedor)
		if err != nil {
			return nil, fmt.Errorf("id_proveedor inválido: %w", err)
		}
		p.IDProveedor = pid
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.PrecioVenta != nil {
		p.PrecioVenta = req.PrecioVenta.Round(2)
	}
	if req.PrecioCompra != nil {
		p.PrecioCompra = req.PrecioCompra.Round(2)
	}
	if req.TieneIVA != nil {
		p.TieneIVA = *req.TieneIVA
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}
