package handler

import (
	"net/http"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearClienteRequest true "Nuevo cliente"
// @Success      201  {object} dto.Respuesta
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Exito("Cliente creado", clienteToResponse(cliente)))
}

// Listar godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	clientes, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = clienteToResponse(&clientes[i])
	}
	c.JSON(http.StatusOK, dto.Exito("Clientes", resp))
}

// PorCedula godoc
// @Summary      Buscar cliente por cédula
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        cedula path string true "Cédula"
// @Success      200 {object} dto.Respuesta
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/cedula/{cedula} [get]
func (h *ClientesHandler) PorCedula(c *gin.Context) {
	cliente, err := h.svc.PorCedula(c.Request.Context(), c.Param("cedula"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Cliente", clienteToResponse(cliente)))
}

// Actualizar godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                       true "UUID del cliente"
// @Param        body body dto.ActualizarClienteRequest true "Campos a actualizar"
// @Success      200  {object} dto.Respuesta
// @Router       /v1/clientes/{id} [put]
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Cliente actualizado", clienteToResponse(cliente)))
}

// Desactivar godoc
// @Summary      Desactivar cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del cliente"
// @Success      204
// @Router       /v1/clientes/{id} [delete]
func (h *ClientesHandler) Desactivar(c *gin.Context) {
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
