package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type stubGroupRepo struct {
	groups         map[string]*models.GroupDetail
	hasResponsible bool
	hasLoan        bool
	added          []string
}

func (s *stubGroupRepo) List(ctx context.Context, filter models.GroupFilter) ([]models.GroupDetail, error) {
	return nil, nil
}

func (s *stubGroupRepo) FindByID(ctx context.Context, id string) (*models.GroupDetail, error) {
	return s.groups[id], nil
}

func (s *stubGroupRepo) Members(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	return nil, nil
}

func (s *stubGroupRepo) ListWithoutLoan(ctx context.Context, anio int) ([]models.GroupDetail, error) {
	return nil, nil
}

func (s *stubGroupRepo) Create(ctx context.Context, req models.CreateGroupRequest) (string, error) {
	return "grupo-new", nil
}

func (s *stubGroupRepo) AddMember(ctx context.Context, groupID, rut, rol string) error {
	s.added = append(s.added, rut)
	return nil
}

func (s *stubGroupRepo) RemoveMember(ctx context.Context, groupID, rut string) (bool, error) {
	return false, nil
}

func (s *stubGroupRepo) HasResponsible(ctx context.Context, groupID string) (bool, error) {
	return s.hasResponsible, nil
}

func (s *stubGroupRepo) UpdateStatus(ctx context.Context, groupID, estado, docRut string) (bool, error) {
	_, ok := s.groups[groupID]
	return ok, nil
}

func (s *stubGroupRepo) HasActiveLoan(ctx context.Context, groupID string, anio int) (bool, error) {
	return s.hasLoan, nil
}

func groupWithMembers(n int) map[string]*models.GroupDetail {
	return map[string]*models.GroupDetail{
		"grupo-1": {
			Group:            models.Group{ID: "grupo-1", Numero: 1, CursoCodigo: "3A-ELEC", Anio: 2026},
			TotalIntegrantes: n,
		},
	}
}

func TestGroupServiceAddMember(t *testing.T) {
	repo := &stubGroupRepo{groups: groupWithMembers(2)}
	svc := NewGroupService(repo, nil, nil)

	err := svc.AddMember(context.Background(), "grupo-1", models.AddMemberRequest{AlumnoRut: "20111222-3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"20111222-3"}, repo.added)
}

func TestGroupServiceAddMemberFullGroup(t *testing.T) {
	repo := &stubGroupRepo{groups: groupWithMembers(models.MaxGroupMembers)}
	svc := NewGroupService(repo, nil, nil)

	err := svc.AddMember(context.Background(), "grupo-1", models.AddMemberRequest{AlumnoRut: "20111222-3"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Empty(t, repo.added)
}

func TestGroupServiceAddSecondResponsible(t *testing.T) {
	repo := &stubGroupRepo{groups: groupWithMembers(1), hasResponsible: true}
	svc := NewGroupService(repo, nil, nil)

	err := svc.AddMember(context.Background(), "grupo-1", models.AddMemberRequest{
		AlumnoRut: "20111222-3",
		Rol:       models.GroupRoleResponsible,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestGroupServiceCreateTooManyMembers(t *testing.T) {
	svc := NewGroupService(&stubGroupRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), models.CreateGroupRequest{
		Numero:      1,
		CursoCodigo: "3A-ELEC",
		Anio:        2026,
		Integrantes: []string{"a", "b", "c", "d"},
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestGroupServiceHasLoan(t *testing.T) {
	repo := &stubGroupRepo{groups: groupWithMembers(2), hasLoan: true}
	svc := NewGroupService(repo, nil, nil)

	has, err := svc.HasLoan(context.Background(), "grupo-1", 2026)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestGroupServiceUpdateStatusInvalid(t *testing.T) {
	svc := NewGroupService(&stubGroupRepo{}, nil, nil)

	err := svc.UpdateStatus(context.Background(), "grupo-1", "SUSPENDIDO", "11111111-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestGroupServiceRemoveMemberNotFound(t *testing.T) {
	svc := NewGroupService(&stubGroupRepo{}, nil, nil)

	err := svc.RemoveMember(context.Background(), "grupo-1", "20111222-3")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
