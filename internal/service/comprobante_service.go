package service

import (
	"context"

	"dalctmarket/internal/infra"
	"dalctmarket/internal/model"
	"dalctmarket/internal/repository"

	"github.com/google/uuid"
)

type ComprobanteService interface {
	// Generar renders the sale's receipt PDF and returns its file path.
	Generar(ctx context.Context, ventaID uuid.UUID) (string, error)
}

type comprobanteService struct {
	ventaRepo     repository.VentaRepository
	parametroRepo repository.ParametroRepository
	storagePath   string

	// render is swappable in tests to avoid touching the filesystem.
	render func(venta *model.Venta, negocio infra.DatosNegocio, storagePath string) (string, error)
}

func NewComprobanteService(
	ventaRepo repository.VentaRepository,
	parametroRepo repository.ParametroRepository,
	storagePath string,
) ComprobanteService {
	return &comprobanteService{
		ventaRepo:     ventaRepo,
		parametroRepo: parametroRepo,
		storagePath:   storagePath,
		render:        infra.GenerarComprobantePDF,
	}
}

func (s *comprobanteService) Generar(ctx context.Context, ventaID uuid.UUID) (string, error) {
	venta, err := s.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		if esNoEncontrado(err) {
			return "", ErrVentaNoEncontrada
		}
		return "", err
	}

	negocio := infra.DatosNegocio{
		Nombre:    s.valorParametro(ctx, "NOMBRE_NEGOCIO"),
		Direccion: s.valorParametro(ctx, "DIRECCION_NEGOCIO"),
		Telefono:  s.valorParametro(ctx, "TELEFONO_NEGOCIO"),
	}

	return s.render(venta, negocio, s.storagePath)
}

// valorParametro returns the parameter value, or "" when absent. The receipt
// header degrades gracefully without business parameters.
func (s *comprobanteService) valorParametro(ctx context.Context, clave string) string {
	p, err := s.parametroRepo.FindByClave(ctx, clave)
	if err != nil {
		return ""
	}
	return p.Valor
}
