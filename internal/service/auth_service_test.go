package service

import (
	"context"
	"testing"

	"dalctmarket/internal/config"
	"dalctmarket/internal/dto"
	"dalctmarket/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

func newAuthServiceParaTest(t *testing.T) (AuthService, *fakeUsuarioRepo) {
	t.Helper()
	repo := newFakeUsuarioRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, JWTRefreshHours: 24}
	return NewAuthService(repo, cfg), repo
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthServiceParaTest(t)

	creado, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "cajero1",
		Nombre:   "Carlos",
		Password: "secreto123",
		Rol:      model.RolCajero,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolCajero, creado.Rol)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cajero1", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "cajero1", resp.User.Username)

	// The access token carries the identity claims the middleware reads.
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, creado.ID, claims["user_id"])
	assert.Equal(t, model.RolCajero, claims["rol"])
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	svc, repo := newAuthServiceParaTest(t)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "cajero1", Nombre: "Carlos", Password: "secreto123", Rol: model.RolCajero,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "cajero1", Password: "incorrecta"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "desconocido", Password: "secreto123"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	// A deactivated user can no longer log in.
	for id := range repo.usuarios {
		require.NoError(t, repo.SoftDelete(context.Background(), id))
	}
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "cajero1", Password: "secreto123"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestRefresh(t *testing.T) {
	svc, _ := newAuthServiceParaTest(t)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "admin", Nombre: "Ana", Password: "secreto123", Rol: model.RolAdministrador,
	})
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secreto123"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, "admin", renovado.User.Username)

	_, err = svc.Refresh(context.Background(), "no-es-un-token")
	assert.Error(t, err)
}

func TestActualizarUsuario(t *testing.T) {
	svc, repo := newAuthServiceParaTest(t)

	creado, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "bodega1", Nombre: "Luis", Password: "secreto123", Rol: model.RolBodeguero,
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	actualizado, err := svc.ActualizarUsuario(context.Background(), id, dto.ActualizarUsuarioRequest{
		Nombre:   "Luis M.",
		Password: "nueva456",
	})
	require.NoError(t, err)
	assert.Equal(t, "Luis M.", actualizado.Nombre)
	assert.Equal(t, model.RolBodeguero, actualizado.Rol)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "bodega1", Password: "secreto123"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "bodega1", Password: "nueva456"})
	assert.NoError(t, err)

	_, err = svc.ActualizarUsuario(context.Background(), uuid.New(), dto.ActualizarUsuarioRequest{Nombre: "x"})
	assert.ErrorIs(t, err, ErrUsuarioNoEncontrado)

	require.NoError(t, svc.DesactivarUsuario(context.Background(), id))
	assert.False(t, repo.usuarios[id].Activo)
}
