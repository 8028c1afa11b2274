package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/apptest"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestCreateUser_HasheaLaClave(t *testing.T) {
	repo := &apptest.FakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Laura Gómez",
		Username: "laura",
		Password: "clave123",
		Role:     entity.RoleOrdinario,
	})
	require.NoError(t, err)
	assert.Equal(t, "laura", out.Username)

	stored, err := repo.FindByUsername("laura")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave123", stored.PasswordHash, "la clave nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))
}

func TestCreateUser_RolInvalidoRechazado(t *testing.T) {
	uc := usecase.NewUserUseCase(&apptest.FakeUserRepo{})

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Laura", Username: "laura", Password: "clave123", Role: "supervisor",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_UsuarioDuplicadoRechazado(t *testing.T) {
	repo := &apptest.FakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{
		Name: "Laura", Username: "laura", Password: "clave123", Role: entity.RoleOrdinario,
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateUserRequest{
		Name: "Otra Laura", Username: "laura", Password: "xyz", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeleteUser_GuardDeAutoBorrado(t *testing.T) {
	repo := &apptest.FakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	admin, err := uc.Create(ctx, dto.CreateUserRequest{
		Name: "Admin", Username: "admin", Password: "clave123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	other, err := uc.Create(ctx, dto.CreateUserRequest{
		Name: "Laura", Username: "laura", Password: "clave123", Role: entity.RoleOrdinario,
	})
	require.NoError(t, err)

	_, err = uc.Delete(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)

	deleted, err := uc.Delete(ctx, admin.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = uc.Delete(ctx, admin.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnsureInitialAdmin_SoloConTablaVacia(t *testing.T) {
	repo := &apptest.FakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	created, err := uc.EnsureInitialAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	admin, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	// Con usuarios existentes no vuelve a crearlo.
	created, err = uc.EnsureInitialAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
