package model

import (
	"time"

	"github.com/google/uuid"
)

// ParametroSistema is a key-value business setting (IVA rate, business name,
// address for receipts, etc.).
type ParametroSistema struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Clave       string    `gorm:"uniqueIndex;not null"`
	Valor       string    `gorm:"not null"`
	Descripcion *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ParametroSistema) TableName() string { return "parametros_sistema" }
