package handler

import (
	"net/http"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PromocionesHandler struct{ svc service.PromocionService }

func NewPromocionesHandler(svc service.PromocionService) *PromocionesHandler {
	return &PromocionesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear promoción
// @Tags         promociones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPromocionRequest true "Nueva promoción"
// @Success      201  {object} dto.Respuesta
// @Router       /v1/promociones [post]
func (h *PromocionesHandler) Crear(c *gin.Context) {
	var req dto.CrearPromocionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Exito("Promoción creada", promocionToResponse(p)))
}

// Listar godoc
// @Summary      Listar promociones
// @Tags         promociones
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/promociones [get]
func (h *PromocionesHandler) Listar(c *gin.Context) {
	promociones, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	resp := make([]dto.PromocionResponse, len(promociones))
	for i := range promociones {
		resp[i] = promocionToResponse(&promociones[i])
	}
	c.JSON(http.StatusOK, dto.Exito("Promociones", resp))
}

// ActivasPorProducto godoc
// @Summary      Promociones activas de un producto
// @Tags         promociones
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del producto"
// @Success      200 {object} dto.Respuesta
// @Router       /v1/promociones/producto/{id} [get]
func (h *PromocionesHandler) ActivasPorProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	promociones, err := h.svc.ActivasPorProducto(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	resp := make([]dto.PromocionResponse, len(promociones))
	for i := range promociones {
		resp[i] = promocionToResponse(&promociones[i])
	}
	c.JSON(http.StatusOK, dto.Exito("Promociones activas", resp))
}

// Desactivar godoc
// @Summary      Desactivar promoción
// @Tags         promociones
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la promoción"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/promociones/{id} [delete]
func (h *PromocionesHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
