package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type workshopRepository interface {
	List(ctx context.Context) ([]models.WorkshopDetail, error)
	FindByCode(ctx context.Context, code string) (*models.WorkshopDetail, error)
	Stats(ctx context.Context) ([]models.WorkshopStats, error)
	Composition(ctx context.Context, code string) ([]models.CompositionEntry, error)
	Create(ctx context.Context, req models.CreateWorkshopRequest) error
	Update(ctx context.Context, code string, req models.UpdateWorkshopRequest) (bool, error)
}

type courseRepository interface {
	List(ctx context.Context, tallerCodigo string, anio int) ([]models.CourseDetail, error)
	FindByCode(ctx context.Context, code string) (*models.CourseDetail, error)
	Create(ctx context.Context, req models.CreateCourseRequest) error
}

// WorkshopService exposes workshops, their courses and the standard
// toolbox composition.
type WorkshopService struct {
	repo      workshopRepository
	courses   courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWorkshopService constructs a WorkshopService instance.
func NewWorkshopService(repo workshopRepository, courses courseRepository, validate *validator.Validate, logger *zap.Logger) *WorkshopService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &WorkshopService{repo: repo, courses: courses, validator: validate, logger: logger}
}

// List returns every workshop.
func (s *WorkshopService) List(ctx context.Context) ([]models.WorkshopDetail, error) {
	workshops, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los talleres")
	}
	if workshops == nil {
		workshops = []models.WorkshopDetail{}
	}
	return workshops, nil
}

// Get returns one workshop.
func (s *WorkshopService) Get(ctx context.Context, code string) (*models.WorkshopDetail, error) {
	workshop, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el taller")
	}
	if workshop == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "taller no encontrado")
	}
	return workshop, nil
}

// Create registers a workshop.
func (s *WorkshopService) Create(ctx context.Context, req models.CreateWorkshopRequest) (*models.WorkshopDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de taller inválidos")
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear el taller")
	}
	s.logger.Info("workshop created", zap.String("taller", req.Codigo))
	return s.Get(ctx, req.Codigo)
}

// Update edits a workshop's descriptive fields.
func (s *WorkshopService) Update(ctx context.Context, code string, req models.UpdateWorkshopRequest) (*models.WorkshopDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de taller inválidos")
	}
	found, err := s.repo.Update(ctx, code, req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar el taller")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "taller no encontrado")
	}
	return s.Get(ctx, code)
}

// Stats returns per-workshop box and loan counters, optionally narrowed
// to one workshop. An unknown workshop code is a 404.
func (s *WorkshopService) Stats(ctx context.Context, tallerCodigo string) ([]models.WorkshopStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron calcular las estadísticas")
	}
	if tallerCodigo != "" {
		for _, entry := range stats {
			if entry.Codigo == tallerCodigo {
				return []models.WorkshopStats{entry}, nil
			}
		}
		return nil, appErrors.Clone(appErrors.ErrNotFound, "taller no encontrado")
	}
	if stats == nil {
		stats = []models.WorkshopStats{}
	}
	return stats, nil
}

// Composition returns the workshop's standard toolbox composition.
func (s *WorkshopService) Composition(ctx context.Context, code string) ([]models.CompositionEntry, error) {
	if _, err := s.Get(ctx, code); err != nil {
		return nil, err
	}
	entries, err := s.repo.Composition(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener la composición estándar")
	}
	if entries == nil {
		entries = []models.CompositionEntry{}
	}
	return entries, nil
}

// Courses returns courses, optionally restricted to one workshop or year.
func (s *WorkshopService) Courses(ctx context.Context, tallerCodigo string, anio int) ([]models.CourseDetail, error) {
	courses, err := s.courses.List(ctx, tallerCodigo, anio)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los cursos")
	}
	if courses == nil {
		courses = []models.CourseDetail{}
	}
	return courses, nil
}

// CreateCourse registers a course section.
func (s *WorkshopService) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.CourseDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de curso inválidos")
	}
	if req.TallerCodigo != "" {
		if _, err := s.Get(ctx, req.TallerCodigo); err != nil {
			return nil, err
		}
	}
	if err := s.courses.Create(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear el curso")
	}
	s.logger.Info("course created", zap.String("curso", req.Codigo))
	return s.Course(ctx, req.Codigo)
}

// Course returns a single course.
func (s *WorkshopService) Course(ctx context.Context, code string) (*models.CourseDetail, error) {
	course, err := s.courses.FindByCode(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el curso")
	}
	if course == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "curso no encontrado")
	}
	return course, nil
}
