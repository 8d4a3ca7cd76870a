package dto

import "github.com/shopspring/decimal"

type DetalleVentaRequest struct {
	IDProducto string `json:"id_producto" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,gt=0"`
}

type CrearVentaRequest struct {
	IDCliente        string                `json:"id_cliente" validate:"required,uuid"`
	MetodoPago       string                `json:"metodo_pago" validate:"required,oneof=Efectivo Tarjeta Transferencia"`
	DescuentoGeneral decimal.Decimal       `json:"descuento_general"`
	Detalles         []DetalleVentaRequest `json:"detalles" validate:"required,min=1,dive"`
}

type DetalleVentaResponse struct {
	ID             string            `json:"id"`
	Producto       ProductoResumen   `json:"producto"`
	Promocion      *PromocionResumen `json:"promocion,omitempty"`
	PrecioUnitario decimal.Decimal   `json:"precio_unitario"`
	Cantidad       int               `json:"cantidad"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	ValorDescuento decimal.Decimal   `json:"valor_descuento"`
}

type VentaResponse struct {
	ID               string                 `json:"id"`
	IDCaja           string                 `json:"id_caja"`
	IDUsuario        string                 `json:"id_usuario"`
	IDCliente        string                 `json:"id_cliente"`
	Cliente          string                 `json:"cliente,omitempty"`
	FechaVenta       string                 `json:"fecha_venta"`
	Subtotal         decimal.Decimal        `json:"subtotal"`
	DescuentoGeneral decimal.Decimal        `json:"descuento_general"`
	TotalDescuento   decimal.Decimal        `json:"total_descuento"`
	BaseIVA          decimal.Decimal        `json:"base_iva"`
	TotalIVA         decimal.Decimal        `json:"total_iva"`
	TotalPagar       decimal.Decimal        `json:"total_pagar"`
	MetodoPago       string                 `json:"metodo_pago"`
	Estado           string                 `json:"estado"`
	Detalles         []DetalleVentaResponse `json:"detalles,omitempty"`
}

type HistoricoVentasRequest struct {
	FechaDesde *string `form:"fecha_desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta *string `form:"fecha_hasta" validate:"omitempty,datetime=2006-01-02"`
	IDUsuario  *string `form:"id_usuario"  validate:"omitempty,uuid"`
	Estado     *string `form:"estado"      validate:"omitempty,oneof=COMPLETADA ANULADA"`
}
