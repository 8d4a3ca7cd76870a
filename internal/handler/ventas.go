package handler

import (
	"net/http"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct {
	svc          service.VentaService
	comprobantes service.ComprobanteService
}

func NewVentasHandler(svc service.VentaService, comprobantes service.ComprobanteService) *VentasHandler {
	return &VentasHandler{svc: svc, comprobantes: comprobantes}
}

// Crear godoc
// @Summary      Registrar una nueva venta
// @Description  Valida cliente, caja del día y stock de cada línea; aplica promociones, descuento general e IVA; persiste venta y descuento de stock en una sola transacción.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearVentaRequest true "Detalle de la venta"
// @Success      201  {object} dto.Respuesta
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.CrearVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	venta, err := h.svc.Crear(c.Request.Context(), actorDe(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Exito("Venta registrada", ventaToResponse(venta)))
}

// Anular godoc
// @Summary      Anular venta
// @Description  Anula una venta del día restaurando el stock de cada línea. Anular dos veces responde success=false sin error y sin tocar stock.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {object} dto.Respuesta
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{id}/anular [put]
func (h *VentasHandler) Anular(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	res, err := h.svc.Anular(c.Request.Context(), actorDe(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	if !res.Cambiado {
		c.JSON(http.StatusOK, dto.Aviso("La venta ya estaba anulada", ventaToResponse(res.Venta)))
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Venta anulada", ventaToResponse(res.Venta)))
}

// PorID godoc
// @Summary      Obtener venta por id
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {object} dto.Respuesta
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id} [get]
func (h *VentasHandler) PorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	venta, err := h.svc.PorID(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Venta", ventaToResponse(venta)))
}

// ListarHoy godoc
// @Summary      Listar ventas de hoy
// @Description  El administrador ve todas las ventas del día; el cajero solo las propias.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/ventas/hoy [get]
func (h *VentasHandler) ListarHoy(c *gin.Context) {
	ventas, err := h.svc.ListarHoy(c.Request.Context(), actorDe(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Ventas del día", ventasToResponse(ventas)))
}

// ListarHistorico godoc
// @Summary      Histórico de ventas (solo administrador)
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_desde query string false "YYYY-MM-DD"
// @Param        fecha_hasta query string false "YYYY-MM-DD"
// @Param        id_usuario  query string false "UUID del vendedor"
// @Param        estado      query string false "COMPLETADA | ANULADA"
// @Success      200 {object} dto.Respuesta
// @Failure      403 {object} apierror.APIError
// @Router       /v1/ventas/historico [get]
func (h *VentasHandler) ListarHistorico(c *gin.Context) {
	var req dto.HistoricoVentasRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}

	ventas, err := h.svc.ListarHistorico(c.Request.Context(), actorDe(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Histórico de ventas", ventasToResponse(ventas)))
}

// Comprobante godoc
// @Summary      Descargar comprobante PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id}/comprobante [get]
func (h *VentasHandler) Comprobante(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	path, err := h.comprobantes.Generar(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.FileAttachment(path, "comprobante_"+id.String()+".pdf")
}
