package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type groupRepository interface {
	List(ctx context.Context, filter models.GroupFilter) ([]models.GroupDetail, error)
	FindByID(ctx context.Context, id string) (*models.GroupDetail, error)
	Members(ctx context.Context, groupID string) ([]models.GroupMember, error)
	ListWithoutLoan(ctx context.Context, anio int) ([]models.GroupDetail, error)
	Create(ctx context.Context, req models.CreateGroupRequest) (string, error)
	AddMember(ctx context.Context, groupID, rut, rol string) error
	RemoveMember(ctx context.Context, groupID, rut string) (bool, error)
	HasResponsible(ctx context.Context, groupID string) (bool, error)
	UpdateStatus(ctx context.Context, groupID, estado, docRut string) (bool, error)
	HasActiveLoan(ctx context.Context, groupID string, anio int) (bool, error)
}

// GroupService manages student work groups.
type GroupService struct {
	repo      groupRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGroupService constructs a GroupService instance.
func NewGroupService(repo groupRepository, validate *validator.Validate, logger *zap.Logger) *GroupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &GroupService{repo: repo, validator: validate, logger: logger}
}

// List returns groups matching the filter.
func (s *GroupService) List(ctx context.Context, filter models.GroupFilter) ([]models.GroupDetail, error) {
	groups, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los grupos")
	}
	if groups == nil {
		groups = []models.GroupDetail{}
	}
	return groups, nil
}

// Get returns one group.
func (s *GroupService) Get(ctx context.Context, id string) (*models.GroupDetail, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el grupo")
	}
	if group == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grupo no encontrado")
	}
	return group, nil
}

// Members returns the students in a group.
func (s *GroupService) Members(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	if _, err := s.Get(ctx, groupID); err != nil {
		return nil, err
	}
	members, err := s.repo.Members(ctx, groupID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los integrantes")
	}
	if members == nil {
		members = []models.GroupMember{}
	}
	return members, nil
}

// ListWithoutLoan returns groups still waiting for a box this year.
func (s *GroupService) ListWithoutLoan(ctx context.Context, anio int) ([]models.GroupDetail, error) {
	groups, err := s.repo.ListWithoutLoan(ctx, anio)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los grupos sin préstamo")
	}
	if groups == nil {
		groups = []models.GroupDetail{}
	}
	return groups, nil
}

// Create registers a group with its initial members. The first listed
// member becomes RESPONSABLE.
func (s *GroupService) Create(ctx context.Context, req models.CreateGroupRequest) (*models.GroupDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de grupo inválidos")
	}
	if len(req.Integrantes) > models.MaxGroupMembers {
		return nil, appErrors.Clone(appErrors.ErrValidation, "un grupo admite como máximo 3 integrantes")
	}

	groupID, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear el grupo")
	}
	s.logger.Info("group created", zap.String("grupo", groupID), zap.String("curso", req.CursoCodigo))
	return s.Get(ctx, groupID)
}

// AddMember adds a student, enforcing the size cap and a single
// RESPONSABLE per group.
func (s *GroupService) AddMember(ctx context.Context, groupID string, req models.AddMemberRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de integrante inválidos")
	}

	group, err := s.Get(ctx, groupID)
	if err != nil {
		return err
	}
	if group.TotalIntegrantes >= models.MaxGroupMembers {
		return appErrors.Clone(appErrors.ErrConflict, "el grupo ya tiene 3 integrantes")
	}

	rol := req.Rol
	if rol == "" {
		rol = models.GroupRoleMember
	}
	if rol == models.GroupRoleResponsible {
		hasResponsible, err := s.repo.HasResponsible(ctx, groupID)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo verificar el responsable")
		}
		if hasResponsible {
			return appErrors.Clone(appErrors.ErrConflict, "el grupo ya tiene un responsable")
		}
	}

	if err := s.repo.AddMember(ctx, groupID, req.AlumnoRut, rol); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo agregar el integrante")
	}
	s.logger.Info("group member added", zap.String("grupo", groupID), zap.String("alumno", req.AlumnoRut), zap.String("rol", rol))
	return nil
}

// UpdateStatus soft-deletes or reactivates a group, attributed to the
// acting teacher in the movement trail. Historical loans stay
// retrievable by id either way.
func (s *GroupService) UpdateStatus(ctx context.Context, groupID, estado, docRut string) error {
	if estado != models.GroupStatusActive && estado != models.GroupStatusInactive {
		return appErrors.Clone(appErrors.ErrValidation, "estado de grupo inválido")
	}
	found, err := s.repo.UpdateStatus(ctx, groupID, estado, docRut)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar el estado del grupo")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "grupo no encontrado")
	}
	s.logger.Info("group status updated", zap.String("grupo", groupID), zap.String("estado", estado))
	return nil
}

// HasLoan reports whether the group already holds an active loan this year.
func (s *GroupService) HasLoan(ctx context.Context, groupID string, anio int) (bool, error) {
	if _, err := s.Get(ctx, groupID); err != nil {
		return false, err
	}
	has, err := s.repo.HasActiveLoan(ctx, groupID, anio)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo verificar el préstamo del grupo")
	}
	return has, nil
}

// RemoveMember removes a student from a group.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, rut string) error {
	found, err := s.repo.RemoveMember(ctx, groupID, rut)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo quitar el integrante")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "el alumno no pertenece al grupo")
	}
	return nil
}
