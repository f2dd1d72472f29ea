package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/auth"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Produccion-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "produccion-api-test",
	})
}

func TestRegister_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@planta.com",
		Password: "secreta123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleOperator, out.Role, "rol por defecto OPERATOR")
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["ana@planta.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@planta.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ana@planta.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "x@planta.com",
		Password: "secreta123",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_DevuelveTokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{
		Email:    "carlos@planta.com",
		Password: "secreta123",
		Role:     entity.RoleSupervisor,
	})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "carlos@planta.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleSupervisor, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "carlos@planta.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "carlos@planta.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "password incorrecta")

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@planta.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "usuario inexistente")
}

func TestLogin_UsuarioInactivoBloqueado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "baja@planta.com", Password: "secreta123"})
	require.NoError(t, err)
	repo.byEmail["baja@planta.com"].Status = "disabled"

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "baja@planta.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
