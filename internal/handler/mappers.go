package handler

import (
	"time"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"
)

const fechaHoraAPI = time.RFC3339

func cajaToResponse(c *model.Caja) dto.CajaResponse {
	resp := dto.CajaResponse{
		ID:                    c.ID.String(),
		IDUsuario:             c.IDUsuario.String(),
		FechaApertura:         c.FechaApertura.Format(fechaHoraAPI),
		MontoInicialDeclarado: c.MontoInicialDeclarado,
		MontoCierreDeclarado:  c.MontoCierreDeclarado,
		MontoCierreSistema:    c.MontoCierreSistema,
		Diferencia:            c.Diferencia,
		Estado:                c.Estado,
		Detalle:               c.Detalle,
	}
	if c.FechaCierre != nil {
		s := c.FechaCierre.Format(fechaHoraAPI)
		resp.FechaCierre = &s
	}
	if c.Usuario != nil {
		resp.Usuario = c.Usuario.Nombre
	}
	return resp
}

func cajasToResponse(cajas []model.Caja) []dto.CajaResponse {
	resp := make([]dto.CajaResponse, len(cajas))
	for i := range cajas {
		resp[i] = cajaToResponse(&cajas[i])
	}
	return resp
}

func ventaToResponse(v *model.Venta) dto.VentaResponse {
	resp := dto.VentaResponse{
		ID:               v.ID.String(),
		IDCaja:           v.IDCaja.String(),
		IDUsuario:        v.IDUsuario.String(),
		IDCliente:        v.IDCliente.String(),
		FechaVenta:       v.FechaVenta.Format(fechaHoraAPI),
		Subtotal:         v.Subtotal,
		DescuentoGeneral: v.DescuentoGeneral,
		TotalDescuento:   v.TotalDescuento,
		BaseIVA:          v.BaseIVA,
		TotalIVA:         v.TotalIVA,
		TotalPagar:       v.TotalPagar,
		MetodoPago:       v.MetodoPago,
		Estado:           v.Estado,
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.Nombre + " " + v.Cliente.Apellido
	}
	for i := range v.Detalles {
		resp.Detalles = append(resp.Detalles, detalleToResponse(&v.Detalles[i]))
	}
	return resp
}

func ventasToResponse(ventas []model.Venta) []dto.VentaResponse {
	resp := make([]dto.VentaResponse, len(ventas))
	for i := range ventas {
		resp[i] = ventaToResponse(&ventas[i])
	}
	return resp
}

func detalleToResponse(d *model.DetalleVenta) dto.DetalleVentaResponse {
	resp := dto.DetalleVentaResponse{
		ID:             d.ID.String(),
		PrecioUnitario: d.PrecioUnitario,
		Cantidad:       d.Cantidad,
		Subtotal:       d.Subtotal,
		ValorDescuento: d.ValorDescuento,
	}
	if d.Producto != nil {
		resp.Producto = dto.ProductoResumen{
			ID:          d.Producto.ID.String(),
			Nombre:      d.Producto.Nombre,
			PrecioVenta: d.Producto.PrecioVenta,
			TieneIVA:    d.Producto.TieneIVA,
		}
	} else {
		resp.Producto = dto.ProductoResumen{ID: d.IDProducto.String()}
	}
	if d.Promocion != nil {
		resp.Promocion = &dto.PromocionResumen{
			ID:         d.Promocion.ID.String(),
			Nombre:     d.Promocion.Nombre,
			Porcentaje: d.Promocion.Porcentaje,
		}
	}
	return resp
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:           p.ID.String(),
		IDCategoria:  p.IDCategoria.String(),
		IDProveedor:  p.IDProveedor.String(),
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		PrecioVenta:  p.PrecioVenta,
		PrecioCompra: p.PrecioCompra,
		TieneIVA:     p.TieneIVA,
		Activo:       p.Activo,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nombre
	}
	if p.Proveedor != nil {
		resp.Proveedor = p.Proveedor.Nombre
	}
	return resp
}

func productosToResponse(productos []model.Producto) []dto.ProductoResponse {
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = productoToResponse(&productos[i])
	}
	return resp
}

func inventarioToResponse(inv *model.Inventario) dto.InventarioResponse {
	resp := dto.InventarioResponse{
		ID:                 inv.ID.String(),
		IDProducto:         inv.IDProducto.String(),
		CantidadDisponible: inv.CantidadDisponible,
		CantidadMinima:     inv.CantidadMinima,
		Activo:             inv.Activo,
	}
	if inv.Producto != nil {
		resp.Producto = inv.Producto.Nombre
	}
	return resp
}

func promocionToResponse(p *model.Promocion) dto.PromocionResponse {
	return dto.PromocionResponse{
		ID:          p.ID.String(),
		IDProducto:  p.IDProducto.String(),
		Nombre:      p.Nombre,
		Porcentaje:  p.Porcentaje,
		FechaInicio: p.FechaInicio.Format("2006-01-02"),
		FechaFin:    p.FechaFin.Format("2006-01-02"),
		Activo:      p.Activo,
	}
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:        c.ID.String(),
		Cedula:    c.Cedula,
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Direccion: c.Direccion,
		Activo:    c.Activo,
	}
}

func proveedorToResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		RUC:       p.RUC,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Direccion: p.Direccion,
		Activo:    p.Activo,
	}
}

func categoriaToResponse(c *model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activo:      c.Activo,
	}
}

func parametroToResponse(p *model.ParametroSistema) dto.ParametroResponse {
	return dto.ParametroResponse{
		ID:          p.ID.String(),
		Clave:       p.Clave,
		Valor:       p.Valor,
		Descripcion: p.Descripcion,
	}
}
