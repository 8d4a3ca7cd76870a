package service

import (
	"context"
	"testing"
	"time"

	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMejorPromocion(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, zonaNegocio)
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	t.Run("vacía", func(t *testing.T) {
		assert.Nil(t, mejorPromocion(nil))
	})

	t.Run("mayor porcentaje gana", func(t *testing.T) {
		mejor := mejorPromocion([]model.Promocion{
			{Porcentaje: decimal.NewFromInt(10), CreatedAt: base},
			{Porcentaje: decimal.NewFromInt(25), CreatedAt: base.Add(time.Hour)},
			{Porcentaje: decimal.NewFromInt(15), CreatedAt: base.Add(2 * time.Hour)},
		})
		require.NotNil(t, mejor)
		assert.True(t, mejor.Porcentaje.Equal(decimal.NewFromInt(25)))
	})

	t.Run("empate resuelto por antigüedad", func(t *testing.T) {
		mejor := mejorPromocion([]model.Promocion{
			{ID: idB, Porcentaje: decimal.NewFromInt(20), CreatedAt: base.Add(time.Hour)},
			{ID: idA, Porcentaje: decimal.NewFromInt(20), CreatedAt: base},
		})
		require.NotNil(t, mejor)
		assert.Equal(t, idA, mejor.ID)
	})

	t.Run("empate total resuelto por id", func(t *testing.T) {
		mejor := mejorPromocion([]model.Promocion{
			{ID: idB, Porcentaje: decimal.NewFromInt(20), CreatedAt: base},
			{ID: idA, Porcentaje: decimal.NewFromInt(20), CreatedAt: base},
		})
		require.NotNil(t, mejor)
		assert.Equal(t, idA, mejor.ID)
	})
}

func TestCrearPromocionCubreElDiaFinal(t *testing.T) {
	productos := newFakeProductoRepo()
	p := &model.Producto{Nombre: "Atún", PrecioVenta: decimal.NewFromInt(2), Activo: true}
	require.NoError(t, productos.CreateConInventario(context.Background(), p, &model.Inventario{}))

	repo := newFakePromocionRepo()
	svc := NewPromocionService(repo, productos)

	promo, err := svc.Crear(context.Background(), dto.CrearPromocionRequest{
		IDProducto:  p.ID.String(),
		Nombre:      "Semana del atún",
		Porcentaje:  decimal.NewFromInt(10),
		FechaInicio: "2026-03-09",
		FechaFin:    "2026-03-10",
	})
	require.NoError(t, err)

	// A sale late in the evening of the end date still sees the promotion.
	noche := time.Date(2026, 3, 10, 22, 30, 0, 0, zonaNegocio)
	mejor, err := svc.MejorActiva(context.Background(), p.ID, noche)
	require.NoError(t, err)
	require.NotNil(t, mejor)
	assert.Equal(t, promo.ID, mejor.ID)

	// One second past midnight it is gone.
	madrugada := time.Date(2026, 3, 11, 0, 0, 1, 0, zonaNegocio)
	mejor, err = svc.MejorActiva(context.Background(), p.ID, madrugada)
	require.NoError(t, err)
	assert.Nil(t, mejor)
}

func TestCrearPromocionValidaciones(t *testing.T) {
	productos := newFakeProductoRepo()
	p := &model.Producto{Nombre: "Atún", PrecioVenta: decimal.NewFromInt(2), Activo: true}
	require.NoError(t, productos.CreateConInventario(context.Background(), p, &model.Inventario{}))
	svc := NewPromocionService(newFakePromocionRepo(), productos)

	_, err := svc.Crear(context.Background(), dto.CrearPromocionRequest{
		IDProducto:  uuid.NewString(),
		Nombre:      "x",
		Porcentaje:  decimal.NewFromInt(10),
		FechaInicio: "2026-03-09",
		FechaFin:    "2026-03-10",
	})
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)

	_, err = svc.Crear(context.Background(), dto.CrearPromocionRequest{
		IDProducto:  p.ID.String(),
		Nombre:      "x",
		Porcentaje:  decimal.NewFromInt(10),
		FechaInicio: "2026-03-10",
		FechaFin:    "2026-03-09",
	})
	assert.Error(t, err)
}

func TestDesactivarPromocion(t *testing.T) {
	repo := newFakePromocionRepo()
	svc := NewPromocionService(repo, newFakeProductoRepo())

	err := svc.Desactivar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPromocionNoEncontrada)

	promo := &model.Promocion{IDProducto: uuid.New(), Nombre: "x", Porcentaje: decimal.NewFromInt(5), Activo: true}
	require.NoError(t, repo.Create(context.Background(), promo))
	require.NoError(t, svc.Desactivar(context.Background(), promo.ID))
	assert.False(t, repo.promos[promo.ID].Activo)
}
