package dto

import "github.com/shopspring/decimal"

type CrearPromocionRequest struct {
	IDProducto  string          `json:"id_producto"  validate:"required,uuid"`
	Nombre      string          `json:"nombre"       validate:"required"`
	Porcentaje  decimal.Decimal `json:"porcentaje"   validate:"required,gt=0,max=100"`
	FechaInicio string          `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string          `json:"fecha_fin"    validate:"required,datetime=2006-01-02"`
}

type PromocionResponse struct {
	ID          string          `json:"id"`
	IDProducto  string          `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Porcentaje  decimal.Decimal `json:"porcentaje"`
	FechaInicio string          `json:"fecha_inicio"`
	FechaFin    string          `json:"fecha_fin"`
	Activo      bool            `json:"activo"`
}

// PromocionResumen is the snapshot embedded in sale-line responses.
type PromocionResumen struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}
