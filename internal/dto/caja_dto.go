package dto

import "github.com/shopspring/decimal"

type AbrirCajaRequest struct {
	MontoInicialDeclarado decimal.Decimal `json:"monto_inicial_declarado" validate:"required,gte=0"`
}

type CerrarCajaRequest struct {
	MontoCierreDeclarado decimal.Decimal `json:"monto_cierre_declarado" validate:"required,gte=0"`
}

type FiltrarCajasRequest struct {
	IDUsuario  *string `form:"id_usuario"   validate:"omitempty,uuid"`
	Estado     *string `form:"estado"       validate:"omitempty,oneof=ABIERTA CERRADA"`
	FechaDesde *string `form:"fecha_desde"  validate:"omitempty,datetime=2006-01-02"`
	FechaHasta *string `form:"fecha_hasta"  validate:"omitempty,datetime=2006-01-02"`
}

type CajaResponse struct {
	ID                    string           `json:"id"`
	IDUsuario             string           `json:"id_usuario"`
	Usuario               string           `json:"usuario,omitempty"`
	FechaApertura         string           `json:"fecha_apertura"`
	FechaCierre           *string          `json:"fecha_cierre,omitempty"`
	MontoInicialDeclarado decimal.Decimal  `json:"monto_inicial_declarado"`
	MontoCierreDeclarado  *decimal.Decimal `json:"monto_cierre_declarado,omitempty"`
	MontoCierreSistema    *decimal.Decimal `json:"monto_cierre_sistema,omitempty"`
	Diferencia            *decimal.Decimal `json:"diferencia,omitempty"`
	Estado                string           `json:"estado"`
	Detalle               string           `json:"detalle,omitempty"`
}

// CierreCajaResponse carries the reconciliation outcome alongside the caja.
type CierreCajaResponse struct {
	Caja               CajaResponse    `json:"caja"`
	MontoCierreSistema decimal.Decimal `json:"monto_cierre_sistema"`
	Diferencia         decimal.Decimal `json:"diferencia"`
	Cuadrada           bool            `json:"cuadrada"`
}
