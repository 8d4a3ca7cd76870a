package handler

import (
	"net/http"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearCategoriaRequest true "Nueva categoría"
// @Success      201  {object} dto.Respuesta
// @Router       /v1/categorias [post]
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Exito("Categoría creada", categoriaToResponse(cat)))
}

// Listar godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Respuesta
// @Router       /v1/categorias [get]
func (h *CategoriasHandler) Listar(c *gin.Context) {
	categorias, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	resp := make([]dto.CategoriaResponse, len(categorias))
	for i := range categorias {
		resp[i] = categoriaToResponse(&categorias[i])
	}
	c.JSON(http.StatusOK, dto.Exito("Categorías", resp))
}

// Actualizar godoc
// @Summary      Actualizar categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                         true "UUID de la categoría"
// @Param        body body dto.ActualizarCategoriaRequest true "Campos a actualizar"
// @Success      200  {object} dto.Respuesta
// @Router       /v1/categorias/{id} [put]
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Exito("Categoría actualizada", categoriaToResponse(cat)))
}

// Desactivar godoc
// @Summary      Desactivar categoría
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la categoría"
// @Success      204
// @Router       /v1/categorias/{id} [delete]
func (h *CategoriasHandler) Desactivar(c *gin.Context) {
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
