package model

import (
	"time"

	"github.com/google/uuid"
)

// Inventario is the 1:1 stock record of a product.
// CantidadDisponible is only ever mutated through the guarded deduct/restore
// updates in the repository and never goes negative.
type Inventario struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDProducto         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CantidadDisponible int       `gorm:"not null;default:0"`
	CantidadMinima     int       `gorm:"not null;default:0"`
	Activo             bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Producto *Producto `gorm:"foreignKey:IDProducto"`
}

func (Inventario) TableName() string { return "inventarios" }
