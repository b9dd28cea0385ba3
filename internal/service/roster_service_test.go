package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoraqua/guardianes-api/internal/catalog"
	"github.com/mentoraqua/guardianes-api/internal/dto"
	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

type stubRosterReader struct {
	groups []string
	teams  map[string]*models.Team
	byName map[string]*models.Team
}

func (s *stubRosterReader) ListGroups(context.Context) ([]string, error) {
	return s.groups, nil
}

func (s *stubRosterReader) FindTeamByMember(_ context.Context, groupID, memberName string) (*models.Team, error) {
	team, ok := s.byName[groupID+"/"+memberName]
	if !ok {
		return nil, appErrors.ErrTeamNotFound
	}
	return team, nil
}

func (s *stubRosterReader) FindTeamByID(_ context.Context, teamID string) (*models.Team, error) {
	team, ok := s.teams[teamID]
	if !ok {
		return nil, appErrors.ErrTeamNotFound
	}
	return team, nil
}

type stubHydrator struct {
	record *models.TeamProgress
	err    error
}

func (s *stubHydrator) GetOrCreate(_ context.Context, team *models.Team, teamName string) (*models.TeamProgress, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.record != nil {
		return s.record, nil
	}
	name := teamName
	if name == "" {
		name = "Equipo 1"
	}
	return &models.TeamProgress{
		TeamID:         team.ID,
		TeamName:       name,
		GroupID:        team.GroupID,
		ApprovalStatus: models.ApprovalNone,
		Data:           map[int]models.ModuleData{},
	}, nil
}

func TestRosterServiceGroups(t *testing.T) {
	svc := NewRosterService(&stubRosterReader{groups: []string{"5A", "5B"}}, &stubHydrator{}, nil, nil)

	resp, err := svc.Groups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"5A", "5B"}, resp.Groups)
}

func TestRosterServiceGroupsNeverNil(t *testing.T) {
	svc := NewRosterService(&stubRosterReader{}, &stubHydrator{}, nil, nil)

	resp, err := svc.Groups(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Groups)
	assert.Empty(t, resp.Groups)
}

func TestRosterServiceLoginNewTeamOffersProjects(t *testing.T) {
	team := &models.Team{ID: "5A-1", GroupID: "5A", TeamNumber: 1, Members: []string{"Ana"}}
	roster := &stubRosterReader{byName: map[string]*models.Team{"5A/Ana": team}}
	svc := NewRosterService(roster, &stubHydrator{}, nil, nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{GroupID: "5A", MemberName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "5A-1", resp.Team.ID)
	assert.True(t, resp.NeedsProjectSelection)
	assert.Len(t, resp.Projects, len(catalog.Projects()))
	assert.Len(t, resp.Modules, catalog.BaseModuleCount())
	assert.Equal(t, models.ModuleActive, resp.Statuses[0])
}

func TestRosterServiceLoginExistingProjectSkipsSelection(t *testing.T) {
	team := &models.Team{ID: "5A-1", GroupID: "5A", TeamNumber: 1}
	roster := &stubRosterReader{byName: map[string]*models.Team{"5A/Ana": team}}
	hydrator := &stubHydrator{record: &models.TeamProgress{
		TeamID:           "5A-1",
		TeamName:         "Los Tlaloques",
		GroupID:          "5A",
		CompletedModules: 3,
		ApprovalStatus:   models.ApprovalNone,
		ProjectID:        "project1",
		Data:             map[int]models.ModuleData{},
	}}
	svc := NewRosterService(roster, hydrator, nil, nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{GroupID: "5A", MemberName: "Ana"})
	require.NoError(t, err)
	assert.False(t, resp.NeedsProjectSelection)
	assert.Empty(t, resp.Projects)
	assert.Greater(t, len(resp.Modules), catalog.BaseModuleCount())
}

func TestRosterServiceLoginValidation(t *testing.T) {
	svc := NewRosterService(&stubRosterReader{}, &stubHydrator{}, nil, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{GroupID: "", MemberName: "Ana"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRosterServiceLoginUnknownMember(t *testing.T) {
	svc := NewRosterService(&stubRosterReader{byName: map[string]*models.Team{}}, &stubHydrator{}, nil, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{GroupID: "5A", MemberName: "Pedro"})
	assert.ErrorIs(t, err, appErrors.ErrTeamNotFound)
}
