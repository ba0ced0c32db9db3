package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/punto-venta/internal/application/auth"
	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/punto-venta/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byUsername map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }

func (r *memUserRepo) Count() (int64, error) { return int64(len(r.byUsername)), nil }

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "punto-venta-test",
}

// newSeededUseCase construye el caso de uso con el admin por defecto sembrado.
func newSeededUseCase(t *testing.T) (*auth.UseCase, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	seeded, err := uc.EnsureDefaultAdmin()
	require.NoError(t, err)
	require.True(t, seeded, "con la tabla vacía debe sembrarse el admin")
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Siembra del admin por defecto
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureDefaultAdmin_SoloConTablaVacia(t *testing.T) {
	uc, repo := newSeededUseCase(t)

	admin := repo.byUsername[auth.DefaultAdminUsername]
	require.NotNil(t, admin)
	assert.Equal(t, auth.DefaultAdminID, admin.ID)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NotEqual(t, auth.DefaultAdminPassword, admin.PasswordHash,
		"la contraseña nunca se guarda en claro")

	// Segunda llamada: ya hay usuarios, no siembra de nuevo.
	seeded, err := uc.EnsureDefaultAdmin()
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestEnsureDefaultAdmin_NoSiembraSiHayUsuarios(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	_, err := uc.Register(dto.RegisterRequest{Username: "cajero1", Password: "secreto123"})
	require.NoError(t, err)

	seeded, err := uc.EnsureDefaultAdmin()
	require.NoError(t, err)
	assert.False(t, seeded, "con usuarios existentes no debe sembrarse el admin")
	assert.Nil(t, repo.byUsername[auth.DefaultAdminUsername])
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminPorDefecto(t *testing.T) {
	uc, _ := newSeededUseCase(t)

	resp, err := uc.Login(dto.LoginRequest{
		Username: auth.DefaultAdminUsername,
		Password: auth.DefaultAdminPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)

	// El token emitido es verificable y carga los claims del usuario.
	userID, username, role, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.DefaultAdminID, userID)
	assert.Equal(t, auth.DefaultAdminUsername, username)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Contraseña incorrecta y usuario inexistente deben ser indistinguibles.
func TestLogin_RechazoUniforme(t *testing.T) {
	uc, _ := newSeededUseCase(t)

	_, errBadPass := uc.Login(dto.LoginRequest{
		Username: auth.DefaultAdminUsername,
		Password: "contraseña-incorrecta",
	})
	_, errNoUser := uc.Login(dto.LoginRequest{
		Username: "fantasma",
		Password: "loquesea",
	})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errBadPass, errNoUser,
		"usuario inexistente y contraseña mala retornan el mismo error")
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _ := newSeededUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CajeroPorDefecto(t *testing.T) {
	uc, repo := newSeededUseCase(t)

	resp, err := uc.Register(dto.RegisterRequest{Username: "cajero1", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, resp.Role, "sin rol explícito se asigna cashier")
	assert.NotEmpty(t, resp.UserID)

	stored := repo.byUsername["cajero1"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)

	// El usuario recién creado puede iniciar sesión.
	login, err := uc.Login(dto.LoginRequest{Username: "cajero1", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, login.User.Role)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := newSeededUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{
		Username: auth.DefaultAdminUsername,
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := newSeededUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "nuevo",
		Password: "clave123",
		Role:     "superusuario",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
