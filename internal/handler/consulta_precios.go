package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/repository"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const precioCacheTTL = 15 * time.Minute

// ConsultaPreciosHandler serves the public price check endpoint.
// No authentication required — no side effects whatsoever.
type ConsultaPreciosHandler struct {
	repo        repository.ProductoRepository
	promociones service.PromocionService
	rdb         *redis.Client
}

func NewConsultaPreciosHandler(repo repository.ProductoRepository, promociones service.PromocionService, rdb *redis.Client) *ConsultaPreciosHandler {
	return &ConsultaPreciosHandler{repo: repo, promociones: promociones, rdb: rdb}
}

// PorNombre godoc
// @Summary      Consulta de precio por nombre de producto (sin autenticación)
// @Tags         precio
// @Produce      json
// @Param        nombre path string true "Nombre exacto del producto"
// @Success      200 {object} dto.ConsultaPrecioResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/precio/{nombre} [get]
func (h *ConsultaPreciosHandler) PorNombre(c *gin.Context) {
	nombre := c.Param("nombre")
	ctx := c.Request.Context()
	cacheKey := "precio:" + nombre

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ConsultaPrecioResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	producto, err := h.repo.FindByNombre(ctx, nombre)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	resp := dto.ConsultaPrecioResponse{
		Nombre:      producto.Nombre,
		PrecioVenta: producto.PrecioVenta,
	}
	if producto.Inventario != nil {
		resp.StockDisponible = producto.Inventario.CantidadDisponible
	}
	if promo, err := h.promociones.MejorActiva(ctx, producto.ID, time.Now()); err == nil && promo != nil {
		resp.Promocion = &dto.PromocionResumen{
			ID:         promo.ID.String(),
			Nombre:     promo.Nombre,
			Porcentaje: promo.Porcentaje,
		}
	}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, precioCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
