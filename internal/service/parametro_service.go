package service

import (
	"context"
	"time"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"
	"dalctmarket/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ParametroLookup is the narrow read interface VentaService depends on.
type ParametroLookup interface {
	// ValorDecimal returns the parameter's numeric value, or ok=false when
	// the key is absent.
	ValorDecimal(ctx context.Context, clave string) (decimal.Decimal, bool, error)
}

type ParametroService interface {
	ParametroLookup
	Crear(ctx context.Context, req dto.CrearParametroRequest) (*model.ParametroSistema, error)
	Listar(ctx context.Context) ([]model.ParametroSistema, error)
	PorClave(ctx context.Context, clave string) (*model.ParametroSistema, error)
	Actualizar(ctx context.Context, clave string, req dto.ActualizarParametroRequest) (*model.ParametroSistema, error)
}

const (
	cachePrefijo = "parametro:"
	cacheTTL     = 10 * time.Minute
)

type parametroService struct {
	repo  repository.ParametroRepository
	cache *redis.Client // nil disables caching (unit tests)
}

func NewParametroService(repo repository.ParametroRepository, cache *redis.Client) ParametroService {
	return &parametroService{repo: repo, cache: cache}
}

func (s *parametroService) Crear(ctx context.Context, req dto.CrearParametroRequest) (*model.ParametroSistema, error) {
	p := &model.ParametroSistema{Clave: req.Clave, Valor: req.Valor, Descripcion: req.Descripcion}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidar(ctx, p.Clave)
	return p, nil
}

func (s *parametroService) Listar(ctx context.Context) ([]model.ParametroSistema, error) {
	return s.repo.List(ctx)
}

func (s *parametroService) PorClave(ctx context.Context, clave string) (*model.ParametroSistema, error) {
	p, err := s.repo.FindByClave(ctx, clave)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrParametroNoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *parametroService) Actualizar(ctx context.Context, clave string, req dto.ActualizarParametroRequest) (*model.ParametroSistema, error) {
	p, err := s.repo.FindByClave(ctx, clave)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, ErrParametroNoEncontrado
		}
		return nil, err
	}

	p.Valor = req.Valor
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidar(ctx, clave)
	return p, nil
}

// ValorDecimal is cache-aside: redis first, DB on miss, write-back with TTL.
// Cache failures degrade to a DB read, never to an error.
func (s *parametroService) ValorDecimal(ctx context.Context, clave string) (decimal.Decimal, bool, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cachePrefijo+clave).Result(); err == nil {
			if v, perr := decimal.NewFromString(raw); perr == nil {
				return v, true, nil
			}
		} else if err != redis.Nil {
			log.Warn().Err(err).Str("clave", clave).Msg("cache de parámetros no disponible")
		}
	}

	p, err := s.repo.FindByClave(ctx, clave)
	if err != nil {
		if esNoEncontrado(err) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	v, err := decimal.NewFromString(p.Valor)
	if err != nil {
		return decimal.Zero, false, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cachePrefijo+clave, p.Valor, cacheTTL).Err(); err != nil {
			log.Warn().Err(err).Str("clave", clave).Msg("no se pudo poblar el cache de parámetros")
		}
	}
	return v, true, nil
}

func (s *parametroService) invalidar(ctx context.Context, clave string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cachePrefijo+clave).Err(); err != nil {
		log.Warn().Err(err).Str("clave", clave).Msg("no se pudo invalidar el cache de parámetros")
	}
}
