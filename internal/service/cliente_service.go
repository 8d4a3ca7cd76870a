package service

import (
	"context"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"
	"dalctmarket/internal/repository"

	"github.com/google/uuid"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error)
	PorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	PorCedula(ctx context.Context, cedula string) (*model.Cliente, error)
	Listar(ctx context.Context) ([]model.Cliente, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	c := &model.Cliente{
		Cedula:    req.Cedula,
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) PorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}
	return c, nil
}

func (s *clienteService) PorCedula(ctx context.Context, cedula string) (*model.Cliente, error) {
	c, err := s.repo.FindByCedula(ctx, cedula)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]model.Cliente, error) {
	return s.repo.List(ctx)
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}

	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		c.Apellido = *req.Apellido
	}
	if req.Telefono != nil {
		c.Telefono = req.Telefono
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Direccion != nil {
		c.Direccion = req.Direccion
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
