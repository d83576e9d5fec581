package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type stubTeacherRepo struct {
	teachers map[string]*models.Teacher
}

func (s *stubTeacherRepo) FindActiveByRut(ctx context.Context, rut string) (*models.Teacher, error) {
	return s.teachers[rut], nil
}

func testAuthService(teachers map[string]*models.Teacher) *AuthService {
	return NewAuthService(&stubTeacherRepo{teachers: teachers}, nil, nil, AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "panol-api",
	})
}

func TestAuthServiceLoginByRut(t *testing.T) {
	svc := testAuthService(map[string]*models.Teacher{
		"11111111-1": {Rut: "11111111-1", Nombre: "Ana", Apellido: "Rojas", Email: "arojas@nocedal.cl", Estado: models.TeacherStatusActive},
	})

	// dotted formatting must be accepted and normalized
	resp, err := svc.Login(context.Background(), models.LoginRequest{Rut: "11.111.111-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "11111111-1", resp.Teacher.Rut)
	assert.Equal(t, models.RoleTeacher, resp.Teacher.Rol)
}

func TestAuthServiceLoginInvalidCheckDigit(t *testing.T) {
	svc := testAuthService(nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Rut: "12.345.678-9"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginUnknownTeacher(t *testing.T) {
	svc := testAuthService(map[string]*models.Teacher{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Rut: "11111111-1"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginWithPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	svc := testAuthService(map[string]*models.Teacher{
		"11111111-1": {Rut: "11111111-1", Nombre: "Ana", Apellido: "Rojas", Estado: models.TeacherStatusActive, PasswordHash: &hashStr},
	})

	_, err = svc.Login(context.Background(), models.LoginRequest{Rut: "11111111-1", Password: "incorrecta"})
	require.Error(t, err)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Rut: "11111111-1", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthServiceValidateToken(t *testing.T) {
	svc := testAuthService(map[string]*models.Teacher{
		"11111111-1": {Rut: "11111111-1", Nombre: "Ana", Apellido: "Rojas", Estado: models.TeacherStatusActive},
	})

	resp, err := svc.Login(context.Background(), models.LoginRequest{Rut: "11111111-1"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "11111111-1", claims.Rut)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
