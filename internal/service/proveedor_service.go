package service

import (
	"context"
	"errors"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"
	"dalctmarket/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error)
	PorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	Listar(ctx context.Context) ([]model.Proveedor, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*model.Proveedor, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	if existing, err := s.repo.FindByRUC(ctx, req.RUC); err == nil && existing != nil {
		return nil, errors.New("ya existe un proveedor con ese RUC")
	}
	p := &model.Proveedor{
		Nombre:    req.Nombre,
		RUC:       req.RUC,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) PorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, errors.New("proveedor no encontrado")
		}
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]model.Proveedor, error) {
	return s.repo.List(ctx)
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*model.Proveedor, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, errors.New("proveedor no encontrado")
		}
		return nil, err
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
