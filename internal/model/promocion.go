package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Promocion is a per-product percentage discount valid between two dates.
// FechaFin is inclusive of its whole calendar day.
type Promocion struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDProducto  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Nombre      string          `gorm:"not null"`
	Porcentaje  decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	FechaInicio time.Time       `gorm:"not null"`
	FechaFin    time.Time       `gorm:"not null"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Producto *Producto `gorm:"foreignKey:IDProducto"`
}

func (Promocion) TableName() string { return "promociones" }
