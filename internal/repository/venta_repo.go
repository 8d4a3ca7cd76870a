package repository

import (
	"context"
	"time"

	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	// CreateTx inserts the sale and its lines; callers must pass the tx instance.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	ListRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error)
	ListFiltrado(ctx context.Context, desde, hasta *time.Time, usuarioID *uuid.UUID, estado *string) ([]model.Venta, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	// SumEfectivoPorCaja totals cash sales of the register excluding annulled ones.
	SumEfectivoPorCaja(ctx context.Context, cajaID uuid.UUID) (decimal.Decimal, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").Preload("Detalles.Promocion").Preload("Cliente").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) ListRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Preload("Cliente").
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Order("fecha_venta DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListFiltrado(ctx context.Context, desde, hasta *time.Time, usuarioID *uuid.UUID, estado *string) ([]model.Venta, error) {
	var ventas []model.Venta
	q := r.db.WithContext(ctx).Preload("Cliente")
	if desde != nil {
		q = q.Where("fecha_venta >= ?", *desde)
	}
	if hasta != nil {
		q = q.Where("fecha_venta < ?", *hasta)
	}
	if usuarioID != nil {
		q = q.Where("id_usuario = ?", *usuarioID)
	}
	if estado != nil {
		q = q.Where("estado = ?", *estado)
	}
	err := q.Order("fecha_venta DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *ventaRepo) SumEfectivoPorCaja(ctx context.Context, cajaID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("SUM(total_pagar)").
		Where("id_caja = ? AND metodo_pago = ? AND estado <> ?", cajaID, model.PagoEfectivo, model.VentaAnulada).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
