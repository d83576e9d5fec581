package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
	"github.com/colegio-nocedal/panol-api/internal/service"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

type fakeTeacherRepo struct {
	teachers map[string]*models.Teacher
}

func (f *fakeTeacherRepo) FindActiveByRut(ctx context.Context, rut string) (*models.Teacher, error) {
	return f.teachers[rut], nil
}

func newAuthHandler(repo *fakeTeacherRepo) *AuthHandler {
	auth := service.NewAuthService(repo, nil, nil, service.AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "panol-api",
	})
	return NewAuthHandler(auth)
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAuthHandler(&fakeTeacherRepo{teachers: map[string]*models.Teacher{
		"111111111": {Rut: "111111111", Nombre: "Marta", Apellido: "Rojas", Email: "mrojas@colegio.cl", Estado: models.TeacherStatusActive},
	}})

	body, _ := json.Marshal(models.LoginRequest{Rut: "11.111.111-1"})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	payload, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, payload["token"])
}

func TestAuthHandlerLoginUnknownTeacher(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAuthHandler(&fakeTeacherRepo{teachers: map[string]*models.Teacher{}})

	body, _ := json.Marshal(models.LoginRequest{Rut: "11.111.111-1"})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerLoginMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAuthHandler(&fakeTeacherRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
