package repository

import (
	"context"

	"dalctmarket/internal/model"

	"gorm.io/gorm"
)

type ParametroRepository interface {
	Create(ctx context.Context, p *model.ParametroSistema) error
	FindByClave(ctx context.Context, clave string) (*model.ParametroSistema, error)
	List(ctx context.Context) ([]model.ParametroSistema, error)
	Update(ctx context.Context, p *model.ParametroSistema) error
}

type parametroRepo struct{ db *gorm.DB }

func NewParametroRepository(db *gorm.DB) ParametroRepository { return &parametroRepo{db: db} }

func (r *parametroRepo) Create(ctx context.Context, p *model.ParametroSistema) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *parametroRepo) FindByClave(ctx context.Context, clave string) (*model.ParametroSistema, error) {
	var p model.ParametroSistema
	err := r.db.WithContext(ctx).Where("clave = ?", clave).First(&p).Error
	return &p, err
}

func (r *parametroRepo) List(ctx context.Context) ([]model.ParametroSistema, error) {
	var parametros []model.ParametroSistema
	err := r.db.WithContext(ctx).Order("clave ASC").Find(&parametros).Error
	return parametros, err
}

func (r *parametroRepo) Update(ctx context.Context, p *model.ParametroSistema) error {
	return r.db.WithContext(ctx).Save(p).Error
}
