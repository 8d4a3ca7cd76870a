package repository

import (
	"context"

	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via fakes.
type ProductoRepository interface {
	// CreateConInventario inserts the product and its inventario row atomically.
	CreateConInventario(ctx context.Context, p *model.Producto, inv *model.Inventario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Producto, error)
	List(ctx context.Context, soloActivos bool) ([]model.Producto, error)
	Buscar(ctx context.Context, termino string) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) CreateConInventario(ctx context.Context, p *model.Producto, inv *model.Inventario) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		inv.IDProducto = p.ID
		return tx.Create(inv).Error
	})
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Proveedor").Preload("Inventario").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) FindByNombre(ctx context.Context, nombre string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Inventario").
		Where("LOWER(nombre) = LOWER(?) AND activo = true", nombre).First(&p).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, soloActivos bool) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Preload("Categoria").Preload("Proveedor")
	if soloActivos {
		q = q.Where("activo = true")
	}
	err := q.Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Buscar(ctx context.Context, termino string) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Preload("Inventario").
		Where("nombre ILIKE ? AND activo = true", "%"+termino+"%").
		Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *productoRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", true).Error
}
