package repository

import (
	"context"
	"time"

	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CajaRepository interface {
	Create(ctx context.Context, c *model.Caja) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Caja, error)
	// FindAbiertaPorUsuario returns the user's currently open register, if any.
	FindAbiertaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error)
	// ExisteAperturaEnRango reports whether the user already opened a register
	// inside [desde, hasta), regardless of its current state.
	ExisteAperturaEnRango(ctx context.Context, usuarioID uuid.UUID, desde, hasta time.Time) (bool, error)
	ListRango(ctx context.Context, desde, hasta time.Time) ([]model.Caja, error)
	ListAll(ctx context.Context) ([]model.Caja, error)
	Filtrar(ctx context.Context, usuarioID *uuid.UUID, estado *string, desde, hasta *time.Time) ([]model.Caja, error)
	Update(ctx context.Context, c *model.Caja) error
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) Create(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cajaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).Preload("Usuario").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *cajaRepo) FindAbiertaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).
		Where("id_usuario = ? AND estado = ?", usuarioID, model.CajaAbierta).
		First(&c).Error
	return &c, err
}

func (r *cajaRepo) ExisteAperturaEnRango(ctx context.Context, usuarioID uuid.UUID, desde, hasta time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Caja{}).
		Where("id_usuario = ? AND fecha_apertura >= ? AND fecha_apertura < ?", usuarioID, desde, hasta).
		Count(&count).Error
	return count > 0, err
}

func (r *cajaRepo) ListRango(ctx context.Context, desde, hasta time.Time) ([]model.Caja, error) {
	var cajas []model.Caja
	err := r.db.WithContext(ctx).Preload("Usuario").
		Where("fecha_apertura >= ? AND fecha_apertura < ?", desde, hasta).
		Order("fecha_apertura DESC").Find(&cajas).Error
	return cajas, err
}

func (r *cajaRepo) ListAll(ctx context.Context) ([]model.Caja, error) {
	var cajas []model.Caja
	err := r.db.WithContext(ctx).Preload("Usuario").
		Order("fecha_apertura DESC").Find(&cajas).Error
	return cajas, err
}

func (r *cajaRepo) Filtrar(ctx context.Context, usuarioID *uuid.UUID, estado *string, desde, hasta *time.Time) ([]model.Caja, error) {
	var cajas []model.Caja
	q := r.db.WithContext(ctx).Preload("Usuario")
	if usuarioID != nil {
		q = q.Where("id_usuario = ?", *usuarioID)
	}
	if estado != nil {
		q = q.Where("estado = ?", *estado)
	}
	if desde != nil {
		q = q.Where("fecha_apertura >= ?", *desde)
	}
	if hasta != nil {
		q = q.Where("fecha_apertura < ?", *hasta)
	}
	err := q.Order("fecha_apertura DESC").Find(&cajas).Error
	return cajas, err
}

func (r *cajaRepo) Update(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Save(c).Error
}
