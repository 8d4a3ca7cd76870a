package handler

import (
	"net/http"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type ParametrosHandler struct{ svc service.ParametroService }

func NewParametrosHandler(svc service.ParametroService) *ParametrosHandler {
	return &ParametrosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear parámetro de sistema (solo administrador)
// @Tags         parametros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearParametroRequest true "Nuevo parámetro"
// @Success      201  {object} dto.Respuesta
// @Router       /v1/parametros [post]
func (h *ParametrosHandler) Crear(c *gin.Context) {
	var req dto.CrearParametroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Exito("Parámetro creado", parametroToResponse(p)))
}

// Listar godoc
// @Summary      Listar parámetros de sistema (solo administrador)
// @Tags         parametros
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/parametros [get]
func (h *ParametrosHandler) Listar(c *gin.Context) {
	parametros, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	resp := make([]dto.ParametroResponse, len(parametros))
	for i := range parametros {
		resp[i] = parametroToResponse(&parametros[i])
	}
	c.JSON(http.StatusOK, dto.Exito("Parámetros", resp))
}

// PorClave godoc
// @Summary      Obtener parámetro por clave (solo administrador)
// @Tags         parametros
// @Produce      json
// @Security     BearerAuth
// @Param        clave path string true "Clave del parámetro"
// @Success      200 {object} dto.Respuesta
// @Failure      404 {object} apierror.APIError
// @Router       /v1/parametros/{clave} [get]
func (h *ParametrosHandler) PorClave(c *gin.Context) {
	p, err := h.svc.PorClave(c.Request.Context(), c.Param("clave"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Parámetro", parametroToResponse(p)))
}

// Actualizar godoc
// @Summary      Actualizar parámetro (solo administrador)
// @Description  Invalida la entrada de cache del parámetro.
// @Tags         parametros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clave path string                        true "Clave del parámetro"
// @Param        body  body dto.ActualizarParametroRequest true "Nuevo valor"
// @Success      200   {object} dto.Respuesta
// @Router       /v1/parametros/{clave} [put]
func (h *ParametrosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarParametroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), c.Param("clave"), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Parámetro actualizado", parametroToResponse(p)))
}
