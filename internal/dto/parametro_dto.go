package dto

type CrearParametroRequest struct {
	Clave       string  `json:"clave" validate:"required"`
	Valor       string  `json:"valor" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarParametroRequest struct {
	Valor       string  `json:"valor" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

type ParametroResponse struct {
	ID          string  `json:"id"`
	Clave       string  `json:"clave"`
	Valor       string  `json:"valor"`
	Descripcion *string `json:"descripcion,omitempty"`
}
