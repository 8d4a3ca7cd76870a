package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCajaNoEncontrada     = errors.New("caja no encontrada")
	ErrCajaAbiertaExistente = errors.New("el usuario ya tiene una caja abierta")
	ErrCajaYaAbiertaHoy     = errors.New("el usuario ya abrió una caja hoy")
	ErrCajaCerrada          = errors.New("la caja del día está cerrada")
	ErrCajaNoAbierta        = errors.New("la caja de la venta no está abierta")
	ErrSinCajaHoy           = errors.New("el usuario no tiene caja abierta hoy")
	ErrDiaDistinto          = errors.New("la caja no fue abierta hoy")
	ErrSinPermiso           = errors.New("el usuario no tiene permiso para esta operación")

	ErrVentaNoEncontrada = errors.New("venta no encontrada")
	ErrVentaNoEsDeHoy    = errors.New("solo pueden anularse ventas del día actual")
	ErrDescuentoInvalido = errors.New("el descuento general debe estar entre 0 y 100")

	ErrClienteNoEncontrado   = errors.New("cliente no encontrado")
	ErrProductoNoEncontrado  = errors.New("producto no encontrado")
	ErrPromocionNoEncontrada = errors.New("promoción no encontrada")
	ErrParametroNoEncontrado = errors.New("parámetro no encontrado")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
)

// Motivos per failing sale line. Stable strings, rendered to API clients.
const (
	MotivoProductoNoEncontrado = "producto_no_encontrado"
	MotivoProductoInactivo     = "producto_inactivo"
	MotivoStockInsuficiente    = "stock_insuficiente"
)

// DetalleInvalido identifies one failing sale line.
type DetalleInvalido struct {
	IDProducto string `json:"id_producto"`
	Motivo     string `json:"motivo"`
}

// ErrorValidacionDetalles carries every failing line of a sale request.
// Lines are validated in request order without short-circuiting so the
// caller sees the complete picture in one round trip.
type ErrorValidacionDetalles struct {
	Detalles []DetalleInvalido
}

func (e *ErrorValidacionDetalles) Error() string {
	return fmt.Sprintf("validación de detalles fallida: %d línea(s) inválida(s)", len(e.Detalles))
}

// esNoEncontrado distinguishes "row absent" from infrastructure failures.
func esNoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// zonaNegocio is the business timezone. Day boundaries for caja and venta
// rules are computed in this zone, never in server-local time.
var zonaNegocio = time.FixedZone("America/Guayaquil", -5*60*60)

// rangoDia returns [00:00, 24:00) of t's business day, in zonaNegocio.
func rangoDia(t time.Time) (time.Time, time.Time) {
	local := t.In(zonaNegocio)
	desde := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zonaNegocio)
	return desde, desde.AddDate(0, 0, 1)
}

// mismoDia reports whether a and b fall on the same business day.
func mismoDia(a, b time.Time) bool {
	da, _ := rangoDia(a)
	db, _ := rangoDia(b)
	return da.Equal(db)
}
