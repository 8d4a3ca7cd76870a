package service

import (
	"context"
	"testing"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValorDecimal(t *testing.T) {
	repo := &fakeParametroRepo{porClave: map[string]*model.ParametroSistema{
		"IVA":            {Clave: "IVA", Valor: "15"},
		"NOMBRE_NEGOCIO": {Clave: "NOMBRE_NEGOCIO", Valor: "Mi Tienda"},
	}}
	svc := NewParametroService(repo, nil)

	v, ok, err := svc.ValorDecimal(context.Background(), "IVA")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(15)))

	// Absent key is not an error, just ok=false.
	_, ok, err = svc.ValorDecimal(context.Background(), "NO_EXISTE")
	require.NoError(t, err)
	assert.False(t, ok)

	// Non-numeric value behaves like an absent key.
	_, ok, err = svc.ValorDecimal(context.Background(), "NOMBRE_NEGOCIO")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParametroCrearActualizar(t *testing.T) {
	repo := &fakeParametroRepo{porClave: map[string]*model.ParametroSistema{}}
	svc := NewParametroService(repo, nil)

	_, err := svc.PorClave(context.Background(), "IVA")
	assert.ErrorIs(t, err, ErrParametroNoEncontrado)

	creado, err := svc.Crear(context.Background(), dto.CrearParametroRequest{Clave: "IVA", Valor: "12"})
	require.NoError(t, err)
	assert.Equal(t, "12", creado.Valor)

	actualizado, err := svc.Actualizar(context.Background(), "IVA", dto.ActualizarParametroRequest{Valor: "15"})
	require.NoError(t, err)
	assert.Equal(t, "15", actualizado.Valor)

	v, ok, err := svc.ValorDecimal(context.Background(), "IVA")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(15)))

	_, err = svc.Actualizar(context.Background(), "NO_EXISTE", dto.ActualizarParametroRequest{Valor: "1"})
	assert.ErrorIs(t, err, ErrParametroNoEncontrado)
}
