package repository

import (
	"context"
	"time"

	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromocionRepository interface {
	Create(ctx context.Context, p *model.Promocion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Promocion, error)
	List(ctx context.Context) ([]model.Promocion, error)
	// ActivasPorProducto returns promotions whose date window contains ahora.
	// Best-promotion selection happens in the service layer.
	ActivasPorProducto(ctx context.Context, productoID uuid.UUID, ahora time.Time) ([]model.Promocion, error)
	Update(ctx context.Context, p *model.Promocion) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type promocionRepo struct{ db *gorm.DB }

func NewPromocionRepository(db *gorm.DB) PromocionRepository { return &promocionRepo{db: db} }

func (r *promocionRepo) Create(ctx context.Context, p *model.Promocion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *promocionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Promocion, error) {
	var p model.Promocion
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *promocionRepo) List(ctx context.Context) ([]model.Promocion, error) {
	var promociones []model.Promocion
	err := r.db.WithContext(ctx).Order("fecha_inicio DESC").Find(&promociones).Error
	return promociones, err
}

func (r *promocionRepo) ActivasPorProducto(ctx context.Context, productoID uuid.UUID, ahora time.Time) ([]model.Promocion, error) {
	var promociones []model.Promocion
	err := r.db.WithContext(ctx).
		Where("id_producto = ? AND activo = true AND fecha_inicio <= ? AND fecha_fin >= ?",
			productoID, ahora, ahora).
		Order("porcentaje DESC, created_at ASC, id ASC").
		Find(&promociones).Error
	return promociones, err
}

func (r *promocionRepo) Update(ctx context.Context, p *model.Promocion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *promocionRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Promocion{}).Where("id = ?", id).Update("activo", false).Error
}
