// Package auth registra estudios contables y usuarios y emite los JWT de sesión.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/domain/repository"
	"github.com/jhoicas/tucontable-api/pkg/jwt"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

const (
	statusActive   = "active"
	minPasswordLen = 8
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta el alta de estudio + admin en una sola transacción.
// Si fn devuelve error no queda nada persistido.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: alta de estudio, registro y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	tx          TxRunner
	jwtCfg      JWTConfig
	now         func() time.Time
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, tx TxRunner, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tx:          tx,
		jwtCfg:      jwtCfg,
		now:         time.Now,
		log:         log.Component("auth"),
	}
}

// RegisterCompany crea el estudio y su primer usuario (rol admin) y devuelve un token listo.
// El RUT del estudio se valida con sii.ValidarRUT y se guarda en forma canónica.
func (uc *AuthUseCase) RegisterCompany(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return nil, fmt.Errorf("%w: company_name es requerido", domain.ErrInvalidInput)
	}
	v := sii.ValidarRUT(in.CompanyRUT)
	rut, ok := v.RUT()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRUT, v.Mensaje)
	}
	email, err := normalizeCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      name,
		RUT:       rut.String(),
		Email:     email,
		Status:    statusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         nonEmpty(strings.TrimSpace(in.Name), email),
		Role:         entity.RoleAdmin,
		Status:       statusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunRegistration(ctx, func(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) error {
		existing, err := companyRepo.GetByRUT(ctx, company.RUT)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: ya existe un estudio con RUT %s", domain.ErrDuplicate, company.RUT)
		}
		taken, err := userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := companyRepo.Create(ctx, company); err != nil {
			return err
		}
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.token(user)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", company.ID).Str("rut", company.RUT).Msg("estudio registrado")
	return &dto.RegisterCompanyResponse{
		Company: toCompanyResponse(company),
		User:    *toUserResponse(user),
		Token:   token,
	}, nil
}

// Register agrega un usuario al estudio companyID. Solo la ruta de admin lo invoca.
// Devuelve ErrEmailAlreadyExists si el email ya está tomado.
func (uc *AuthUseCase) Register(ctx context.Context, companyID string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email, err := normalizeCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAsistente
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: rol %q desconocido", domain.ErrInvalidInput, role)
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         nonEmpty(strings.TrimSpace(in.Name), email),
		Role:         role,
		Status:       statusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", companyID).Str("user_id", user.ID).Str("role", role).Msg("usuario registrado")
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != statusActive {
		return nil, domain.ErrForbidden
	}
	token, err := uc.token(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func (uc *AuthUseCase) token(u *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:    u.ID,
		CompanyID: u.CompanyID,
		Role:      u.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

func normalizeCredentials(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}
	return email, nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{ID: c.ID, Name: c.Name, RUT: c.RUT, Status: c.Status}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
