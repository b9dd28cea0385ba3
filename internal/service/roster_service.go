package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mentoraqua/guardianes-api/internal/catalog"
	"github.com/mentoraqua/guardianes-api/internal/dto"
	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

type rosterReader interface {
	ListGroups(ctx context.Context) ([]string, error)
	FindTeamByMember(ctx context.Context, groupID, memberName string) (*models.Team, error)
	FindTeamByID(ctx context.Context, teamID string) (*models.Team, error)
}

type progressHydrator interface {
	GetOrCreate(ctx context.Context, team *models.Team, teamName string) (*models.TeamProgress, error)
}

// RosterService resolves students to their teacher-assigned teams and hands
// a hydrated progress record to the journey screen.
type RosterService struct {
	roster   rosterReader
	progress progressHydrator
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRosterService constructs a RosterService.
func NewRosterService(roster rosterReader, progress progressHydrator, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{roster: roster, progress: progress, validate: validate, logger: logger}
}

// Groups lists the group identifiers shown on the login screen.
func (s *RosterService) Groups(ctx context.Context) (*dto.GroupsResponse, error) {
	groups, err := s.roster.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []string{}
	}
	return &dto.GroupsResponse{Groups: groups}, nil
}

// Login matches a student name inside a group and returns the team with its
// hydrated progress, module list and unlock statuses.
func (s *RosterService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login request")
	}

	team, err := s.roster.FindTeamByMember(ctx, req.GroupID, req.MemberName)
	if err != nil {
		return nil, err
	}

	progress, err := s.progress.GetOrCreate(ctx, team, req.TeamName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("team login",
		zap.String("teamId", team.ID),
		zap.String("groupId", team.GroupID),
		zap.Int("completedModules", progress.CompletedModules))

	modules := ModulesFor(*progress)
	resp := &dto.LoginResponse{
		Team:                  *team,
		Progress:              *progress,
		Modules:               modules,
		Statuses:              ComputeModuleStatus(modules, *progress),
		NeedsProjectSelection: progress.ProjectID == "",
	}
	if resp.NeedsProjectSelection {
		resp.Projects = catalog.Projects()
	}
	return resp, nil
}
