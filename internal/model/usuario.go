package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles del sistema. Qué puede hacer cada rol por recurso vive en authz.
const (
	RolAdministrador = "administrador"
	RolBodeguero     = "bodeguero"
	RolCajero        = "cajero"
)

// Usuario stores system users with role-based access.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
