package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mentoraqua/guardianes-api/internal/catalog"
	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

type progressStore interface {
	Get(ctx context.Context, teamID string) (*models.TeamProgress, error)
	Put(ctx context.Context, progress *models.TeamProgress) error
	AppendSessionLog(ctx context.Context, entry models.SessionLogEntry) error
}

// ProgressService owns the mission state machine: module unlocking, draft
// saves, completions, review transitions and project selection. Transitions
// are pure functions over a record value; persistence happens once per
// operation after the transition.
type ProgressService struct {
	store        progressStore
	overrideCode string
	logger       *zap.Logger
	now          func() time.Time
	newID        func() string
}

// NewProgressService constructs a ProgressService. overrideCode is the
// teacher code that authorizes changing an already selected project.
func NewProgressService(store progressStore, overrideCode string, logger *zap.Logger) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{
		store:        store,
		overrideCode: overrideCode,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// ComputeModuleStatus derives the unlock state for each module, index-aligned
// with modules. While frozen the completed prefix stays visible and everything
// else locks; otherwise exactly one module (at clampedCompleted, when in
// bounds) is active.
func ComputeModuleStatus(modules []models.ModuleDefinition, progress models.TeamProgress) []models.ModuleStatus {
	clamped := clampCompleted(progress.CompletedModules, len(modules))
	statuses := make([]models.ModuleStatus, len(modules))
	for i := range modules {
		switch {
		case i < clamped:
			statuses[i] = models.ModuleCompleted
		case !progress.Frozen() && i == clamped:
			statuses[i] = models.ModuleActive
		default:
			statuses[i] = models.ModuleLocked
		}
	}
	return statuses
}

func clampCompleted(completed, total int) int {
	if completed < 0 {
		return 0
	}
	if completed > total {
		return total
	}
	return completed
}

// ModulesFor returns the active module list for a record.
func ModulesFor(progress models.TeamProgress) []models.ModuleDefinition {
	return catalog.ModulesFor(progress.ProjectID)
}

// GetOrCreate loads a team's record, creating a fresh one on first login.
// Stored records are hydrated field by field so an older or partially
// written record never crashes the journey screen. A non-empty teamName
// renames the team.
func (s *ProgressService) GetOrCreate(ctx context.Context, team *models.Team, teamName string) (*models.TeamProgress, error) {
	stored, err := s.store.Get(ctx, team.ID)
	if err != nil && !errors.Is(err, appErrors.ErrNotFound) {
		return nil, err
	}

	if stored == nil {
		fresh := s.freshRecord(team, teamName)
		if err := s.store.Put(ctx, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	next := stored.Clone()
	changed := s.hydrate(&next, team)
	if teamName != "" && teamName != next.TeamName {
		next.TeamName = teamName
		changed = true
	}
	if changed {
		next.LastUpdated = s.now()
		if err := s.store.Put(ctx, &next); err != nil {
			return nil, err
		}
	}
	return &next, nil
}

func (s *ProgressService) freshRecord(team *models.Team, teamName string) *models.TeamProgress {
	if teamName == "" {
		teamName = fmt.Sprintf("Equipo %d", team.TeamNumber)
	}
	return &models.TeamProgress{
		TeamID:           team.ID,
		TeamName:         teamName,
		GroupID:          team.GroupID,
		CompletedModules: 0,
		ApprovalStatus:   models.ApprovalNone,
		Data:             map[int]models.ModuleData{},
		LastUpdated:      s.now(),
	}
}

func (s *ProgressService) hydrate(progress *models.TeamProgress, team *models.Team) bool {
	changed := false
	if progress.TeamID != team.ID {
		progress.TeamID = team.ID
		changed = true
	}
	if progress.GroupID != team.GroupID {
		progress.GroupID = team.GroupID
		changed = true
	}
	if progress.TeamName == "" {
		progress.TeamName = fmt.Sprintf("Equipo %d", team.TeamNumber)
		changed = true
	}
	switch progress.ApprovalStatus {
	case models.ApprovalNone, models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
	default:
		progress.ApprovalStatus = models.ApprovalNone
		changed = true
	}
	if progress.CompletedModules < 0 {
		progress.CompletedModules = 0
		changed = true
	}
	if progress.Data == nil {
		progress.Data = map[int]models.ModuleData{}
		changed = true
	}
	return changed
}

// Journey loads the record together with the active module list and the
// computed status per module.
func (s *ProgressService) Journey(ctx context.Context, teamID string) (*models.TeamProgress, []models.ModuleDefinition, []models.ModuleStatus, error) {
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, nil, nil, err
	}
	modules := ModulesFor(*progress)
	return progress, modules, ComputeModuleStatus(modules, *progress), nil
}

// SaveDraft replaces the answer bucket of one module without touching the
// completion counter or approval status. Frozen records refuse the write.
func (s *ProgressService) SaveDraft(ctx context.Context, teamID string, moduleID int, data models.ModuleData) (*models.TeamProgress, error) {
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if progress.Frozen() {
		return progress, appErrors.ErrRecordFrozen
	}
	if _, ok := moduleIndex(ModulesFor(*progress), moduleID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "unknown module")
	}

	next := progress.Clone()
	next.Data[moduleID] = models.SanitizeModuleData(data)
	next.LastUpdated = s.now()
	if err := s.store.Put(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// CompleteModule stores the module's answers and advances the completion
// counter monotonically: completing module at index i yields
// max(completedModules, i+1), so replays and out-of-order completions never
// regress a team. Completing anything while rejected re-queues the plan for
// review. Frozen records refuse the write.
func (s *ProgressService) CompleteModule(ctx context.Context, teamID string, moduleID int, data models.ModuleData) (*models.TeamProgress, error) {
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if progress.Frozen() {
		return progress, appErrors.ErrRecordFrozen
	}
	index, ok := moduleIndex(ModulesFor(*progress), moduleID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "unknown module")
	}

	next := progress.Clone()
	next.Data[moduleID] = models.SanitizeModuleData(data)
	if index+1 > next.CompletedModules {
		next.CompletedModules = index + 1
	}
	if next.ApprovalStatus == models.ApprovalRejected {
		next.ApprovalStatus = models.ApprovalPending
	}
	next.LastUpdated = s.now()
	if err := s.store.Put(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// SubmitForReview moves a fully completed, unfrozen plan into the review
// queue.
func (s *ProgressService) SubmitForReview(ctx context.Context, teamID string) (*models.TeamProgress, error) {
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if progress.Frozen() {
		return progress, appErrors.ErrRecordFrozen
	}
	modules := ModulesFor(*progress)
	if clampCompleted(progress.CompletedModules, len(modules)) < len(modules) {
		return progress, appErrors.ErrMissionIncomplete
	}

	next := progress.Clone()
	next.ApprovalStatus = models.ApprovalPending
	next.LastUpdated = s.now()
	if err := s.store.Put(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Approve marks the plan approved and clears any prior rejection feedback.
func (s *ProgressService) Approve(ctx context.Context, teamID string) (*models.TeamProgress, error) {
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}

	next := progress.Clone()
	next.ApprovalStatus = models.ApprovalApproved
	next.TeacherFeedback = ""
	next.LastUpdated = s.now()
	if err := s.store.Put(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Reject returns the plan to the team with feedback stored verbatim.
func (s *ProgressService) Reject(ctx context.Context, teamID, feedback string) (*models.TeamProgress, error) {
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}

	next := progress.Clone()
	next.ApprovalStatus = models.ApprovalRejected
	next.TeacherFeedback = feedback
	next.LastUpdated = s.now()
	if err := s.store.Put(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// SelectProject assigns the team's project track. Changing an already
// selected project requires the teacher override code and resets review
// state: approval back to none, feedback cleared, the completion counter
// clamped to the base curriculum and extension-module answers dropped.
func (s *ProgressService) SelectProject(ctx context.Context, teamID, projectID, overrideCode string) (*models.TeamProgress, error) {
	if _, ok := catalog.ProjectByID(projectID); !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown project")
	}
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if progress.ProjectID == projectID {
		return progress, nil
	}
	if progress.ProjectID != "" && !s.codeMatches(overrideCode) {
		return progress, appErrors.ErrProjectLocked
	}

	next := progress.Clone()
	next.ProjectID = projectID
	next.ApprovalStatus = models.ApprovalNone
	next.TeacherFeedback = ""
	if next.CompletedModules > catalog.BaseModuleCount() {
		next.CompletedModules = catalog.BaseModuleCount()
	}
	for id := range next.Data {
		if !catalog.IsBaseModuleID(id) {
			delete(next.Data, id)
		}
	}
	next.LastUpdated = s.now()
	if err := s.store.Put(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// FinishSession bumps the record's timestamp and appends an immutable
// snapshot to the session log.
func (s *ProgressService) FinishSession(ctx context.Context, teamID string) (*models.SessionLogEntry, error) {
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}

	next := progress.Clone()
	next.LastUpdated = s.now()
	if err := s.store.Put(ctx, &next); err != nil {
		return nil, err
	}

	entry := models.SessionLogEntry{
		ID:               s.newID(),
		TeamID:           next.TeamID,
		TeamName:         next.TeamName,
		GroupID:          next.GroupID,
		CompletedModules: next.CompletedModules,
		ApprovalStatus:   next.ApprovalStatus,
		ProjectID:        next.ProjectID,
		SavedAt:          next.LastUpdated,
	}
	if err := s.store.AppendSessionLog(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// VerifyCode checks the teacher access code in constant time.
func (s *ProgressService) VerifyCode(code string) bool {
	return s.codeMatches(code)
}

func (s *ProgressService) codeMatches(code string) bool {
	if s.overrideCode == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(s.overrideCode)) == 1
}

func moduleIndex(modules []models.ModuleDefinition, moduleID int) (int, bool) {
	for i, module := range modules {
		if module.ID == moduleID {
			return i, true
		}
	}
	return 0, false
}
