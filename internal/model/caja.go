package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de la caja.
const (
	CajaAbierta = "ABIERTA"
	CajaCerrada = "CERRADA"
)

// Caja is one cash-register working period of a user.
// Lifecycle: created by open, mutated by close (fills the closing fields and
// the variance) and by reopen (clears them again). Never deleted.
type Caja struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDUsuario             uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaApertura         time.Time       `gorm:"not null"`
	FechaCierre           *time.Time
	MontoInicialDeclarado decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	MontoCierreDeclarado  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// MontoCierreSistema is computed on close: sum of non-annulled cash sales
	// booked against this caja.
	MontoCierreSistema *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// Diferencia = declarado − sistema.
	Diferencia *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Estado     string           `gorm:"type:varchar(20);not null;default:'ABIERTA'"`
	// Detalle is a free-text audit trail; every transition appends who did it.
	Detalle   string `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Usuario *Usuario `gorm:"foreignKey:IDUsuario"`
}

func (Caja) TableName() string { return "cajas" }
