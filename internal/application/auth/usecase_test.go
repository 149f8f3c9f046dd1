package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tucontable-api/internal/application/auth"
	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/domain/repository"
	"github.com/jhoicas/tucontable-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	companies map[string]*entity.Company
}

func newStore() *store {
	return &store{users: map[string]*entity.User{}, companies: map[string]*entity.Company{}}
}

type userRepo struct{ s *store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r userRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type companyRepo struct {
	s       *store
	failErr error
}

func (r companyRepo) Create(_ context.Context, c *entity.Company) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r companyRepo) GetByRUT(_ context.Context, rut string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.RUT == rut {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// txRunner simula la transacción: trabaja sobre una copia y solo la publica si fn no falla.
type txRunner struct {
	s          *store
	companyErr error
}

func (t *txRunner) RunRegistration(_ context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	t.s.mu.Lock()
	shadow := newStore()
	for k, v := range t.s.users {
		shadow.users[k] = v
	}
	for k, v := range t.s.companies {
		shadow.companies[k] = v
	}
	t.s.mu.Unlock()

	if err := fn(companyRepo{s: shadow, failErr: t.companyErr}, userRepo{s: shadow}); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.users, t.s.companies = shadow.users, shadow.companies
	return nil
}

const testSecret = "secreto-de-pruebas"

func newUseCase(s *store, tx *txRunner) *auth.AuthUseCase {
	if tx == nil {
		tx = &txRunner{s: s}
	}
	return auth.NewAuthUseCase(userRepo{s: s}, companyRepo{s: s}, tx,
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "tucontable-test"}, nil)
}

func registrarEstudio(t *testing.T, uc *auth.AuthUseCase) *dto.RegisterCompanyResponse {
	t.Helper()
	out, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "Estudio Pérez",
		CompanyRUT:  "76086428-5",
		Email:       "Admin@Perez.cl ",
		Password:    "clave-segura",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterCompany
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCompany_CreaEstudioYAdmin(t *testing.T) {
	s := newStore()
	out := registrarEstudio(t, newUseCase(s, nil))

	assert.Equal(t, "76.086.428-5", out.Company.RUT)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Equal(t, "admin@perez.cl", out.User.Email)
	assert.Equal(t, out.Company.ID, out.User.CompanyID)

	id, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, id.UserID)
	assert.Equal(t, out.Company.ID, id.CompanyID)
	assert.Equal(t, jwt.RoleAdmin, id.Role)

	assert.Len(t, s.companies, 1)
	assert.Len(t, s.users, 1)
}

func TestRegisterCompany_RUTInvalido(t *testing.T) {
	_, err := newUseCase(newStore(), nil).RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "X", CompanyRUT: "12345678-0", Email: "a@b.cl", Password: "clave-segura",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRUT)
}

func TestRegisterCompany_RUTDuplicado(t *testing.T) {
	s := newStore()
	uc := newUseCase(s, nil)
	registrarEstudio(t, uc)

	_, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "Otro", CompanyRUT: "76.086.428-5", Email: "otro@x.cl", Password: "clave-segura",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterCompany_FalloRevierteTodo(t *testing.T) {
	s := newStore()
	boom := errors.New("db caída")
	uc := newUseCase(s, &txRunner{s: s, companyErr: boom})

	_, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "X", CompanyRUT: "76086428-5", Email: "a@b.cl", Password: "clave-segura",
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, s.companies)
	assert.Empty(t, s.users)
}

func TestRegisterCompany_PasswordCorta(t *testing.T) {
	_, err := newUseCase(newStore(), nil).RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "X", CompanyRUT: "76086428-5", Email: "a@b.cl", Password: "123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / Login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolPorDefectoAsistente(t *testing.T) {
	s := newStore()
	uc := newUseCase(s, nil)
	est := registrarEstudio(t, uc)

	u, err := uc.Register(context.Background(), est.Company.ID, dto.RegisterRequest{
		Email: "asistente@perez.cl", Password: "otra-clave-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAsistente, u.Role)
	assert.Equal(t, est.Company.ID, u.CompanyID)
}

func TestRegister_RolDesconocido(t *testing.T) {
	s := newStore()
	uc := newUseCase(s, nil)
	est := registrarEstudio(t, uc)

	_, err := uc.Register(context.Background(), est.Company.ID, dto.RegisterRequest{
		Email: "x@perez.cl", Password: "otra-clave-1", Role: "vendedor",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	s := newStore()
	uc := newUseCase(s, nil)
	est := registrarEstudio(t, uc)

	_, err := uc.Register(context.Background(), est.Company.ID, dto.RegisterRequest{
		Email: "admin@perez.cl", Password: "otra-clave-1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EstudioInexistente(t *testing.T) {
	_, err := newUseCase(newStore(), nil).Register(context.Background(), "no-existe", dto.RegisterRequest{
		Email: "x@y.cl", Password: "otra-clave-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_OK(t *testing.T) {
	s := newStore()
	uc := newUseCase(s, nil)
	est := registrarEstudio(t, uc)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ADMIN@perez.cl", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, est.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	s := newStore()
	uc := newUseCase(s, nil)
	registrarEstudio(t, uc)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@perez.cl", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	_, err := newUseCase(newStore(), nil).Login(context.Background(), dto.LoginRequest{Email: "nadie@x.cl", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	s := newStore()
	uc := newUseCase(s, nil)
	est := registrarEstudio(t, uc)
	s.users[est.User.ID].Status = "inactive"

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@perez.cl", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
