package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type stubStudentRepo struct {
	students map[string]*models.StudentDetail
	created  *models.Student
	updated  bool
}

func (s *stubStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error) {
	return nil, nil
}

func (s *stubStudentRepo) FindByRut(ctx context.Context, rut string) (*models.StudentDetail, error) {
	return s.students[rut], nil
}

func (s *stubStudentRepo) Groups(ctx context.Context, rut string) ([]models.StudentGroup, error) {
	return nil, nil
}

func (s *stubStudentRepo) LoanHistory(ctx context.Context, rut string) ([]models.LoanDetail, error) {
	return nil, nil
}

func (s *stubStudentRepo) Create(ctx context.Context, student models.Student) error {
	s.created = &student
	if s.students == nil {
		s.students = map[string]*models.StudentDetail{}
	}
	s.students[student.Rut] = &models.StudentDetail{Student: student}
	return nil
}

func (s *stubStudentRepo) Update(ctx context.Context, student models.Student) (bool, error) {
	_, ok := s.students[student.Rut]
	s.updated = ok
	return ok, nil
}

func (s *stubStudentRepo) UpdateStatus(ctx context.Context, rut, estado, docRut string) (bool, error) {
	_, ok := s.students[rut]
	return ok, nil
}

func TestStudentServiceCreateDefaultsEntryYear(t *testing.T) {
	repo := &stubStudentRepo{}
	svc := NewStudentService(repo, nil, nil)

	student, err := svc.Create(context.Background(), CreateStudentRequest{
		Rut:       "11.111.111-1",
		Nombres:   "Pedro",
		Apellidos: "Soto",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, time.Now().Year(), repo.created.AnioIngreso)
	assert.Equal(t, models.StudentStatusActive, student.Estado)
	assert.Equal(t, "11111111-1", student.Rut)
}

func TestStudentServiceCreateInvalidRut(t *testing.T) {
	svc := NewStudentService(&stubStudentRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		Rut:       "11.111.111-9",
		Nombres:   "Pedro",
		Apellidos: "Soto",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestStudentServiceUpdateNotFound(t *testing.T) {
	svc := NewStudentService(&stubStudentRepo{}, nil, nil)

	_, err := svc.Update(context.Background(), "11111111-1", UpdateStudentRequest{
		Nombres:     "Pedro",
		Apellidos:   "Soto",
		AnioIngreso: 2026,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
