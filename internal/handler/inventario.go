package handler

import (
	"net/http"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar inventario
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/inventario [get]
func (h *InventarioHandler) Listar(c *gin.Context) {
	inventarios, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	resp := make([]dto.InventarioResponse, len(inventarios))
	for i := range inventarios {
		resp[i] = inventarioToResponse(&inventarios[i])
	}
	c.JSON(http.StatusOK, dto.Exito("Inventario", resp))
}

// PorProducto godoc
// @Summary      Inventario de un producto
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del producto"
// @Success      200 {object} dto.Respuesta
// @Failure      404 {object} apierror.APIError
// @Router       /v1/inventario/{id} [get]
func (h *InventarioHandler) PorProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	inv, err := h.svc.PorProducto(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Inventario del producto", inventarioToResponse(inv)))
}

// Actualizar godoc
// @Summary      Ajustar inventario de un producto
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                          true "UUID del producto"
// @Param        body body dto.ActualizarInventarioRequest true "Cantidades"
// @Success      200  {object} dto.Respuesta
// @Router       /v1/inventario/{id} [put]
func (h *InventarioHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	inv, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Inventario actualizado", inventarioToResponse(inv)))
}

// AlertasStock godoc
// @Summary      Productos en o bajo su stock mínimo
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/inventario/alertas [get]
func (h *InventarioHandler) AlertasStock(c *gin.Context) {
	inventarios, err := h.svc.AlertasStock(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	alertas := make([]dto.AlertaStockResponse, len(inventarios))
	for i, inv := range inventarios {
		alertas[i] = dto.AlertaStockResponse{
			IDProducto:         inv.IDProducto.String(),
			CantidadDisponible: inv.CantidadDisponible,
			CantidadMinima:     inv.CantidadMinima,
		}
		if inv.Producto != nil {
			alertas[i].Producto = inv.Producto.Nombre
		}
	}
	c.JSON(http.StatusOK, dto.Exito("Alertas de stock", alertas))
}
