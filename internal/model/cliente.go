package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is the buyer registry consumed by the sale pipeline.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Cedula    string    `gorm:"uniqueIndex;not null"`
	Nombre    string    `gorm:"not null"`
	Apellido  string    `gorm:"not null"`
	Telefono  *string
	Email     *string
	Direccion *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
