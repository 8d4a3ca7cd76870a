package handler

import (
	"net/http"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearProveedorRequest true "Nuevo proveedor"
// @Success      201  {object} dto.Respuesta
// @Router       /v1/proveedores [post]
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Exito("Proveedor creado", proveedorToResponse(p)))
}

// Listar godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/proveedores [get]
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	proveedores, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	resp := make([]dto.ProveedorResponse, len(proveedores))
	for i := range proveedores {
		resp[i] = proveedorToResponse(&proveedores[i])
	}
	c.JSON(http.StatusOK, dto.Exito("Proveedores", resp))
}

// PorID godoc
// @Summary      Obtener proveedor por id
// @Tags         proveedores
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      200 {object} dto.Respuesta
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{id} [get]
func (h *ProveedoresHandler) PorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	p, err := h.svc.PorID(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Proveedor", proveedorToResponse(p)))
}

// Actualizar godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                         true "UUID del proveedor"
// @Param        body body dto.ActualizarProveedorRequest true "Campos a actualizar"
// @Success      200  {object} dto.Respuesta
// @Router       /v1/proveedores/{id} [put]
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Proveedor actualizado", proveedorToResponse(p)))
}

// Desactivar godoc
// @Summary      Desactivar proveedor
// @Tags         proveedores
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      204
// @Router       /v1/proveedores/{id} [delete]
func (h *ProveedoresHandler) Desactivar(c *gin.Context) {
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
