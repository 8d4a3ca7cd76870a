package dto

type ActualizarInventarioRequest struct {
	CantidadDisponible *int `json:"cantidad_disponible" validate:"omitempty,min=0"`
	CantidadMinima     *int `json:"cantidad_minima"     validate:"omitempty,min=0"`
}

type InventarioResponse struct {
	ID                 string `json:"id"`
	IDProducto         string `json:"id_producto"`
	Producto           string `json:"producto,omitempty"`
	CantidadDisponible int    `json:"cantidad_disponible"`
	CantidadMinima     int    `json:"cantidad_minima"`
	Activo             bool   `json:"activo"`
}

// AlertaStockResponse flags a product at or below its minimum quantity.
type AlertaStockResponse struct {
	IDProducto         string `json:"id_producto"`
	Producto           string `json:"producto"`
	CantidadDisponible int    `json:"cantidad_disponible"`
	CantidadMinima     int    `json:"cantidad_minima"`
}
