package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de la venta.
const (
	VentaCompletada = "COMPLETADA"
	VentaAnulada    = "ANULADA"
)

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "Efectivo"
	PagoTarjeta       = "Tarjeta"
	PagoTransferencia = "Transferencia"
)

// Venta is a completed point-of-sale transaction. It is created atomically
// with its detalles and only ever mutated by anulación (state flip, no
// recomputation). BaseIVA is the tax-rate percentage captured at creation.
type Venta struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDCaja           uuid.UUID       `gorm:"type:uuid;not null;index"`
	IDUsuario        uuid.UUID       `gorm:"type:uuid;not null;index"`
	IDCliente        uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaVenta       time.Time       `gorm:"not null"`
	Subtotal         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DescuentoGeneral decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	TotalDescuento   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BaseIVA          decimal.Decimal `gorm:"type:decimal(5,2);not null;column:base_iva"`
	TotalIVA         decimal.Decimal `gorm:"type:decimal(12,2);not null;column:total_iva"`
	TotalPagar       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago       string          `gorm:"type:varchar(50);not null"`
	Estado           string          `gorm:"type:varchar(30);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Usuario  *Usuario       `gorm:"foreignKey:IDUsuario"`
	Cliente  *Cliente       `gorm:"foreignKey:IDCliente"`
	Detalles []DetalleVenta `gorm:"foreignKey:IDVenta"`
}

func (Venta) TableName() string { return "ventas" }

// DetalleVenta is one line of a sale. Immutable after creation; unit price and
// discounts are snapshots taken at sale time.
type DetalleVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDVenta        uuid.UUID       `gorm:"type:uuid;not null;index"`
	IDProducto     uuid.UUID       `gorm:"type:uuid;not null;index"`
	IDPromocion    *uuid.UUID      `gorm:"type:uuid"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cantidad       int             `gorm:"not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorDescuento decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto  *Producto  `gorm:"foreignKey:IDProducto"`
	Promocion *Promocion `gorm:"foreignKey:IDPromocion"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }
