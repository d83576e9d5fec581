package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/rut"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error)
	FindByRut(ctx context.Context, rut string) (*models.StudentDetail, error)
	Groups(ctx context.Context, rut string) ([]models.StudentGroup, error)
	LoanHistory(ctx context.Context, rut string) ([]models.LoanDetail, error)
	Create(ctx context.Context, student models.Student) error
	Update(ctx context.Context, student models.Student) (bool, error)
	UpdateStatus(ctx context.Context, rut, estado, docRut string) (bool, error)
}

// CreateStudentRequest registers a new student. The entry year defaults
// to the current one when omitted.
type CreateStudentRequest struct {
	Rut         string `json:"alu_rut" validate:"required"`
	Nombres     string `json:"alu_nombres" validate:"required"`
	Apellidos   string `json:"alu_apellidos" validate:"required"`
	Email       string `json:"alu_email" validate:"omitempty,email"`
	Telefono    string `json:"alu_telefono"`
	AnioIngreso int    `json:"alu_anio_ingreso" validate:"omitempty,min=2000"`
	CursoCodigo string `json:"cur_codigo"`
}

// UpdateStudentRequest replaces a student's editable fields.
type UpdateStudentRequest struct {
	Nombres     string `json:"alu_nombres" validate:"required"`
	Apellidos   string `json:"alu_apellidos" validate:"required"`
	Email       string `json:"alu_email" validate:"omitempty,email"`
	Telefono    string `json:"alu_telefono"`
	AnioIngreso int    `json:"alu_anio_ingreso" validate:"required,min=2000"`
	CursoCodigo string `json:"cur_codigo"`
}

// StudentService manages student records and their loan history.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns students matching the filter.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los alumnos")
	}
	if students == nil {
		students = []models.StudentDetail{}
	}
	return students, nil
}

// Get returns one student by RUT.
func (s *StudentService) Get(ctx context.Context, studentRut string) (*models.StudentDetail, error) {
	student, err := s.repo.FindByRut(ctx, rut.Clean(studentRut))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el alumno")
	}
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "alumno no encontrado")
	}
	return student, nil
}

// Groups returns the group memberships of a student.
func (s *StudentService) Groups(ctx context.Context, studentRut string) ([]models.StudentGroup, error) {
	if _, err := s.Get(ctx, studentRut); err != nil {
		return nil, err
	}
	groups, err := s.repo.Groups(ctx, rut.Clean(studentRut))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los grupos del alumno")
	}
	if groups == nil {
		groups = []models.StudentGroup{}
	}
	return groups, nil
}

// LoanHistory returns every loan granted to groups the student joined.
func (s *StudentService) LoanHistory(ctx context.Context, studentRut string) ([]models.LoanDetail, error) {
	if _, err := s.Get(ctx, studentRut); err != nil {
		return nil, err
	}
	loans, err := s.repo.LoanHistory(ctx, rut.Clean(studentRut))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el historial del alumno")
	}
	if loans == nil {
		loans = []models.LoanDetail{}
	}
	return loans, nil
}

// Create registers a student. The RUT must carry a valid check digit.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de alumno inválidos")
	}

	normalized := rut.Clean(req.Rut)
	if !rut.Valid(normalized) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "rut de alumno inválido")
	}
	if req.AnioIngreso == 0 {
		req.AnioIngreso = time.Now().Year()
	}

	student := models.Student{
		Rut:         normalized,
		Nombres:     req.Nombres,
		Apellidos:   req.Apellidos,
		Estado:      models.StudentStatusActive,
		AnioIngreso: req.AnioIngreso,
	}
	if req.Email != "" {
		student.Email = &req.Email
	}
	if req.Telefono != "" {
		student.Telefono = &req.Telefono
	}
	if req.CursoCodigo != "" {
		student.CursoCodigo = &req.CursoCodigo
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear el alumno")
	}
	s.logger.Info("student created", zap.String("rut", normalized))
	return s.Get(ctx, normalized)
}

// Update replaces a student's editable fields.
func (s *StudentService) Update(ctx context.Context, studentRut string, req UpdateStudentRequest) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de alumno inválidos")
	}

	normalized := rut.Clean(studentRut)
	student := models.Student{
		Rut:         normalized,
		Nombres:     req.Nombres,
		Apellidos:   req.Apellidos,
		AnioIngreso: req.AnioIngreso,
	}
	if req.Email != "" {
		student.Email = &req.Email
	}
	if req.Telefono != "" {
		student.Telefono = &req.Telefono
	}
	if req.CursoCodigo != "" {
		student.CursoCodigo = &req.CursoCodigo
	}

	found, err := s.repo.Update(ctx, student)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar el alumno")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "alumno no encontrado")
	}
	s.logger.Info("student updated", zap.String("rut", normalized))
	return s.Get(ctx, normalized)
}

// UpdateStatus flips a student's enrollment status, attributed to the
// acting teacher in the movement trail.
func (s *StudentService) UpdateStatus(ctx context.Context, studentRut, estado, docRut string) error {
	switch estado {
	case models.StudentStatusActive, models.StudentStatusInactive, models.StudentStatusGraduated:
	default:
		return appErrors.Clone(appErrors.ErrValidation, "estado de alumno inválido")
	}

	found, err := s.repo.UpdateStatus(ctx, rut.Clean(studentRut), estado, docRut)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar el alumno")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "alumno no encontrado")
	}
	return nil
}
