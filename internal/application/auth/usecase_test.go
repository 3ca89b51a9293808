package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisur/almacen-api/internal/application/auth"
	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/pkg/jwt"
)

type userRepoFake struct{ byEmail map[string]*entity.User }

func (r *userRepoFake) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}
func (r *userRepoFake) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *userRepoFake) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

type companyRepoFake struct{ companies map[string]*entity.Company }

func (r *companyRepoFake) Create(c *entity.Company) error { return nil }
func (r *companyRepoFake) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *companyRepoFake) List(limit, offset int) ([]entity.Company, error) { return nil, nil }

const secret = "clave-de-prueba"

func setup() *auth.UseCase {
	users := &userRepoFake{byEmail: map[string]*entity.User{}}
	companies := &companyRepoFake{companies: map[string]*entity.Company{
		"emp-1": {ID: "emp-1", Name: "Distribuidora Sur"},
	}}
	return auth.NewUseCase(users, companies, auth.JWTConfig{
		Secret: secret, ExpMinutes: 60, Issuer: "almacen-api",
	})
}

func TestRegisterYLogin(t *testing.T) {
	uc := setup()
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		CompanyID: "emp-1",
		Email:     "cliente@sur.com",
		Password:  "secreto123",
		Name:      "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, user.Role, "con empresa el rol por defecto es cliente")

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "cliente@sur.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, companyID, role, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "emp-1", companyID, "el token lleva la empresa del usuario")
	assert.Equal(t, entity.RoleCliente, role)
}

func TestRegister_SinEmpresaEsPersonal(t *testing.T) {
	uc := setup()

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "operador@almacen.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperador, user.Role)
	assert.Empty(t, user.CompanyID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := setup()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "x12345"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "x12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolDeInstalacionConEmpresaRechazado(t *testing.T) {
	uc := setup()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		CompanyID: "emp-1",
		Email:     "x@y.com",
		Password:  "x12345",
		Role:      entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := setup()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "correcta1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := setup()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
