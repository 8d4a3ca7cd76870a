package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	IDCategoria  string          `json:"id_categoria" validate:"required,uuid"`
	IDProveedor  string          `json:"id_proveedor" validate:"required,uuid"`
	Nombre       string          `json:"nombre"       validate:"required"`
	Descripcion  *string         `json:"descripcion"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"  validate:"required,gt=0"`
	PrecioCompra decimal.Decimal `json:"precio_compra" validate:"required,gt=0"`
	TieneIVA     *bool           `json:"tiene_iva"`
	// Optional initial stock for the auto-created inventario row.
	CantidadDisponible *int `json:"cantidad_disponible" validate:"omitempty,min=0"`
	CantidadMinima     *int `json:"cantidad_minima"     validate:"omitempty,min=0"`
}

type ActualizarProductoRequest struct {
	IDCategoria  *string          `json:"id_categoria" validate:"omitempty,uuid"`
	IDProveedor  *string          `json:"id_proveedor" validate:"omitempty,uuid"`
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"  validate:"omitempty,gt=0"`
	PrecioCompra *decimal.Decimal `json:"precio_compra" validate:"omitempty,gt=0"`
	TieneIVA     *bool            `json:"tiene_iva"`
}

type ProductoResponse struct {
	ID           string          `json:"id"`
	IDCategoria  string          `json:"id_categoria"`
	IDProveedor  string          `json:"id_proveedor"`
	Nombre       string          `json:"nombre"`
	Descripcion  *string         `json:"descripcion,omitempty"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	TieneIVA     bool            `json:"tiene_iva"`
	Activo       bool            `json:"activo"`
	Categoria    string          `json:"categoria,omitempty"`
	Proveedor    string          `json:"proveedor,omitempty"`
}

// ProductoResumen is the snapshot embedded in sale-line responses.
type ProductoResumen struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	TieneIVA    bool            `json:"tiene_iva"`
}

// ConsultaPrecioResponse is served by the public price-check endpoint.
type ConsultaPrecioResponse struct {
	Nombre          string            `json:"nombre"`
	PrecioVenta     decimal.Decimal   `json:"precio_venta"`
	StockDisponible int               `json:"stock_disponible"`
	Promocion       *PromocionResumen `json:"promocion"`
}
