package service

import (
	"fmt"

	"dalctmarket/internal/model"

	"github.com/google/uuid"
)

// Actor is the authenticated principal performing an operation, extracted
// from the JWT by the middleware layer.
type Actor struct {
	ID     uuid.UUID
	Nombre string
	Rol    string
}

func (a Actor) EsAdmin() bool { return a.Rol == model.RolAdministrador }

// etiqueta renders the actor for audit notes: "id-nombre".
func (a Actor) etiqueta() string {
	return fmt.Sprintf("%s-%s", a.ID, a.Nombre)
}
