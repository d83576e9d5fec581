package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/rut"
)

type authTeacherRepository interface {
	FindActiveByRut(ctx context.Context, rut string) (*models.Teacher, error)
}

// AuthConfig defines configuration for the login flow.
type AuthConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// AuthService authenticates teachers by RUT and issues access tokens.
type AuthService struct {
	repo      authTeacherRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authTeacherRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, validator: validate, logger: logger, config: config}
}

// Login authenticates a teacher. The RUT is normalized and checked with
// the modulo-11 digit before touching the database, so malformed input
// never reaches a query. Teacher rows without a password hash predate
// the password rollout and authenticate by RUT alone.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "rut es obligatorio")
	}

	normalized := rut.Clean(req.Rut)
	if !rut.Valid(normalized) {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "rut inválido")
	}

	teacher, err := s.repo.FindActiveByRut(ctx, normalized)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo verificar el docente")
	}
	if teacher == nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	if teacher.PasswordHash != nil && *teacher.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(*teacher.PasswordHash), []byte(req.Password)); err != nil {
			return nil, appErrors.ErrInvalidCredentials
		}
	}

	now := time.Now().UTC()
	claims := models.JWTClaims{
		Rut:    teacher.Rut,
		Nombre: teacher.Nombre + " " + teacher.Apellido,
		Email:  teacher.Email,
		Rol:    models.RoleTeacher,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   teacher.Rut,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo emitir el token")
	}

	s.logger.Info("teacher logged in", zap.String("rut", teacher.Rut))

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.config.Expiration.Seconds()),
		IssuedAt:  now,
		Teacher: models.TeacherInfo{
			Rut:      teacher.Rut,
			Nombre:   teacher.Nombre,
			Apellido: teacher.Apellido,
			Email:    teacher.Email,
			Rol:      models.RoleTeacher,
		},
	}, nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "token inválido o expirado")
	}
	return claims, nil
}
