package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog entry. Its financial fields are snapshotted into
// DetalleVenta at sale time, so later catalog edits never rewrite past sales.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDCategoria uuid.UUID `gorm:"type:uuid;not null;index"`
	IDProveedor uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioCompra decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TieneIVA     bool            `gorm:"not null;default:true;column:tiene_iva"`
	Activo       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Categoria  *Categoria  `gorm:"foreignKey:IDCategoria"`
	Proveedor  *Proveedor  `gorm:"foreignKey:IDProveedor"`
	Inventario *Inventario `gorm:"foreignKey:IDProducto"`
}

func (Producto) TableName() string { return "productos" }
