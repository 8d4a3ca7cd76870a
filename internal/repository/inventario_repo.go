package repository

import (
	"context"

	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventarioRepository interface {
	FindByProducto(ctx context.Context, productoID uuid.UUID) (*model.Inventario, error)
	List(ctx context.Context) ([]model.Inventario, error)
	ListBajoStock(ctx context.Context) ([]model.Inventario, error)
	Update(ctx context.Context, inv *model.Inventario) error

	// Used inside transactions — callers must pass the tx instance.
	DescontarTx(tx *gorm.DB, productoID uuid.UUID, cantidad int) (int64, error)
	RestaurarTx(tx *gorm.DB, productoID uuid.UUID, cantidad int) error
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

func (r *inventarioRepo) FindByProducto(ctx context.Context, productoID uuid.UUID) (*model.Inventario, error) {
	var inv model.Inventario
	err := r.db.WithContext(ctx).Where("id_producto = ?", productoID).First(&inv).Error
	return &inv, err
}

func (r *inventarioRepo) List(ctx context.Context) ([]model.Inventario, error) {
	var inventarios []model.Inventario
	err := r.db.WithContext(ctx).Preload("Producto").Where("activo = true").Find(&inventarios).Error
	return inventarios, err
}

func (r *inventarioRepo) ListBajoStock(ctx context.Context) ([]model.Inventario, error) {
	var inventarios []model.Inventario
	err := r.db.WithContext(ctx).Preload("Producto").
		Where("activo = true AND cantidad_disponible <= cantidad_minima").
		Find(&inventarios).Error
	return inventarios, err
}

func (r *inventarioRepo) Update(ctx context.Context, inv *model.Inventario) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

// DescontarTx deducts stock with a guarded UPDATE. The predicate on
// cantidad_disponible makes the deduction atomic under concurrency: a race
// that would drive stock negative yields zero affected rows instead.
func (r *inventarioRepo) DescontarTx(tx *gorm.DB, productoID uuid.UUID, cantidad int) (int64, error) {
	res := tx.Model(&model.Inventario{}).
		Where("id_producto = ? AND cantidad_disponible >= ?", productoID, cantidad).
		Update("cantidad_disponible", gorm.Expr("cantidad_disponible - ?", cantidad))
	return res.RowsAffected, res.Error
}

func (r *inventarioRepo) RestaurarTx(tx *gorm.DB, productoID uuid.UUID, cantidad int) error {
	return tx.Model(&model.Inventario{}).
		Where("id_producto = ?", productoID).
		Update("cantidad_disponible", gorm.Expr("cantidad_disponible + ?", cantidad)).Error
}
