package handler

import (
	"errors"
	"net/http"
	"reflect"

	"dalctmarket/internal/apierror"
	"dalctmarket/internal/middleware"
	"dalctmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQueryAndValidate is the query-string counterpart of bindAndValidate.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responderError maps service errors onto the HTTP taxonomy:
// 404 missing, 403 authorization, 400 validation, 500 everything else.
func responderError(c *gin.Context, err error) {
	var detalles *service.ErrorValidacionDetalles
	if errors.As(err, &detalles) {
		errores := make([]apierror.DetalleError, len(detalles.Detalles))
		for i, d := range detalles.Detalles {
			errores[i] = apierror.DetalleError{IDProducto: d.IDProducto, Error: d.Motivo}
		}
		c.JSON(http.StatusBadRequest, apierror.NewDetalles(errores))
		return
	}

	switch {
	case errors.Is(err, service.ErrCajaNoEncontrada),
		errors.Is(err, service.ErrVentaNoEncontrada),
		errors.Is(err, service.ErrClienteNoEncontrado),
		errors.Is(err, service.ErrProductoNoEncontrado),
		errors.Is(err, service.ErrPromocionNoEncontrada),
		errors.Is(err, service.ErrParametroNoEncontrado),
		errors.Is(err, service.ErrUsuarioNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrSinPermiso):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCajaAbiertaExistente),
		errors.Is(err, service.ErrCajaYaAbiertaHoy),
		errors.Is(err, service.ErrCajaCerrada),
		errors.Is(err, service.ErrCajaNoAbierta),
		errors.Is(err, service.ErrSinCajaHoy),
		errors.Is(err, service.ErrDiaDistinto),
		errors.Is(err, service.ErrVentaNoEsDeHoy),
		errors.Is(err, service.ErrDescuentoInvalido),
		errors.Is(err, service.ErrCredencialesInvalidas):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		// Unexpected: hand off to the ErrorHandler middleware for logging.
		_ = c.Error(err)
	}
}

// actorDe builds the service-layer actor from the JWT claims.
func actorDe(c *gin.Context) service.Actor {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return service.Actor{ID: id, Nombre: claims.Nombre, Rol: claims.Rol}
}
