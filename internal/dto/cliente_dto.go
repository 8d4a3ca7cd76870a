package dto

type CrearClienteRequest struct {
	Cedula    string  `json:"cedula"   validate:"required,min=10"`
	Nombre    string  `json:"nombre"   validate:"required"`
	Apellido  string  `json:"apellido" validate:"required"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type ClienteResponse struct {
	ID        string  `json:"id"`
	Cedula    string  `json:"cedula"`
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
	Activo    bool    `json:"activo"`
}
