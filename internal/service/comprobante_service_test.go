package service

import (
	"context"
	"testing"

	"dalctmarket/internal/infra"
	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeParametroRepo struct {
	porClave map[string]*model.ParametroSistema
}

func (r *fakeParametroRepo) Create(_ context.Context, p *model.ParametroSistema) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.porClave[p.Clave] = p
	return nil
}

func (r *fakeParametroRepo) FindByClave(_ context.Context, clave string) (*model.ParametroSistema, error) {
	p, ok := r.porClave[clave]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeParametroRepo) List(_ context.Context) ([]model.ParametroSistema, error) {
	out := make([]model.ParametroSistema, 0, len(r.porClave))
	for _, p := range r.porClave {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeParametroRepo) Update(_ context.Context, p *model.ParametroSistema) error {
	r.porClave[p.Clave] = p
	return nil
}

func TestGenerarComprobante(t *testing.T) {
	ventas := newFakeVentaRepo()
	venta := &model.Venta{IDCaja: uuid.New(), IDUsuario: uuid.New(), IDCliente: uuid.New()}
	require.NoError(t, ventas.CreateTx(nil, venta))

	params := &fakeParametroRepo{porClave: map[string]*model.ParametroSistema{
		"NOMBRE_NEGOCIO":    {Clave: "NOMBRE_NEGOCIO", Valor: "Mi Tienda"},
		"DIRECCION_NEGOCIO": {Clave: "DIRECCION_NEGOCIO", Valor: "Av. Principal 123"},
	}}

	svc := NewComprobanteService(ventas, params, "/tmp/comprobantes").(*comprobanteService)

	var capturada infra.DatosNegocio
	svc.render = func(v *model.Venta, negocio infra.DatosNegocio, storagePath string) (string, error) {
		capturada = negocio
		assert.Equal(t, venta.ID, v.ID)
		assert.Equal(t, "/tmp/comprobantes", storagePath)
		return storagePath + "/comprobante_" + v.ID.String() + ".pdf", nil
	}

	ruta, err := svc.Generar(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.Contains(t, ruta, venta.ID.String())
	assert.Equal(t, "Mi Tienda", capturada.Nombre)
	assert.Equal(t, "Av. Principal 123", capturada.Direccion)
	// Missing parameter degrades to an empty header line.
	assert.Equal(t, "", capturada.Telefono)
}

func TestGenerarComprobanteVentaInexistente(t *testing.T) {
	svc := NewComprobanteService(newFakeVentaRepo(), &fakeParametroRepo{porClave: map[string]*model.ParametroSistema{}}, "/tmp")
	_, err := svc.Generar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVentaNoEncontrada)
}
