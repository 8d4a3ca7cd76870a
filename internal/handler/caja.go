package handler

import (
	"net/http"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Abrir godoc
// @Summary      Abrir caja
// @Description  Abre la caja del día para el usuario autenticado. Rechaza si ya tiene una abierta o si ya abrió hoy.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AbrirCajaRequest true "Monto inicial declarado"
// @Success      201  {object} dto.Respuesta
// @Failure      400  {object} apierror.APIError
// @Router       /v1/caja/abrir [post]
func (h *CajaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	caja, err := h.svc.Abrir(c.Request.Context(), actorDe(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Exito("Caja abierta", cajaToResponse(caja)))
}

// Cerrar godoc
// @Summary      Cerrar caja
// @Description  Cierra la caja calculando el monto de sistema y la diferencia. Cerrar una caja ya cerrada responde success=false sin error.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "UUID de la caja"
// @Param        body body dto.CerrarCajaRequest true "Monto de cierre declarado"
// @Success      200  {object} dto.Respuesta
// @Failure      400  {object} apierror.APIError
// @Router       /v1/caja/{id}/cerrar [put]
func (h *CajaHandler) Cerrar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.CerrarCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	res, err := h.svc.Cerrar(c.Request.Context(), actorDe(c), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	if !res.Cambiado {
		c.JSON(http.StatusOK, dto.Aviso("La caja ya estaba cerrada", cajaToResponse(res.Caja)))
		return
	}

	caja := res.Caja
	resp := dto.CierreCajaResponse{Caja: cajaToResponse(caja)}
	if caja.MontoCierreSistema != nil {
		resp.MontoCierreSistema = *caja.MontoCierreSistema
	}
	if caja.Diferencia != nil {
		resp.Diferencia = *caja.Diferencia
		resp.Cuadrada = caja.Diferencia.IsZero()
	}
	c.JSON(http.StatusOK, dto.Exito("Caja cerrada", resp))
}

// Reabrir godoc
// @Summary      Reabrir caja (solo administrador)
// @Description  Reabre una caja cerrada limpiando los montos de cierre. Reabrir una caja no cerrada responde success=false sin error.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la caja"
// @Success      200 {object} dto.Respuesta
// @Failure      403 {object} apierror.APIError
// @Router       /v1/caja/{id}/reabrir [put]
func (h *CajaHandler) Reabrir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	res, err := h.svc.Reabrir(c.Request.Context(), actorDe(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	if !res.Cambiado {
		c.JSON(http.StatusOK, dto.Aviso("La caja no estaba cerrada", cajaToResponse(res.Caja)))
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Caja reabierta", cajaToResponse(res.Caja)))
}

// ListarHoy godoc
// @Summary      Listar cajas de hoy
// @Description  El administrador ve todas las cajas del día; el resto solo la propia.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/caja/hoy [get]
func (h *CajaHandler) ListarHoy(c *gin.Context) {
	cajas, err := h.svc.ListarHoy(c.Request.Context(), actorDe(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Cajas del día", cajasToResponse(cajas)))
}

// ListarTodas godoc
// @Summary      Historial completo de cajas (solo administrador)
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Failure      403 {object} apierror.APIError
// @Router       /v1/caja [get]
func (h *CajaHandler) ListarTodas(c *gin.Context) {
	cajas, err := h.svc.ListarTodas(c.Request.Context(), actorDe(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Historial de cajas", cajasToResponse(cajas)))
}

// Filtrar godoc
// @Summary      Filtrar cajas (solo administrador)
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        id_usuario  query string false "UUID del usuario"
// @Param        estado      query string false "ABIERTA | CERRADA"
// @Param        fecha_desde query string false "YYYY-MM-DD"
// @Param        fecha_hasta query string false "YYYY-MM-DD"
// @Success      200 {object} dto.Respuesta
// @Failure      403 {object} apierror.APIError
// @Router       /v1/caja/filtrar [get]
func (h *CajaHandler) Filtrar(c *gin.Context) {
	var req dto.FiltrarCajasRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}

	cajas, err := h.svc.Filtrar(c.Request.Context(), actorDe(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Cajas filtradas", cajasToResponse(cajas)))
}
