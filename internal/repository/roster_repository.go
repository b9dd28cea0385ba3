package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

// RosterRepository reads the teacher-assigned team roster. The roster is
// seeded out of band and treated as read-only by the API.
type RosterRepository struct {
	db *sqlx.DB
}

// NewRosterRepository constructs a RosterRepository.
func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// ListGroups returns the distinct group identifiers in the roster,
// sorted ascending.
func (r *RosterRepository) ListGroups(ctx context.Context) ([]string, error) {
	var groups []string
	query := `SELECT DISTINCT group_id FROM team_members ORDER BY group_id ASC`
	if err := r.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// ListTeams returns every team in a group with its member names.
func (r *RosterRepository) ListTeams(ctx context.Context, groupID string) ([]models.Team, error) {
	var rows []models.TeamMember
	query := `SELECT team_id, group_id, team_number, member_name FROM team_members WHERE group_id = $1 ORDER BY team_number ASC, member_name ASC`
	if err := r.db.SelectContext(ctx, &rows, query, groupID); err != nil {
		return nil, fmt.Errorf("list teams for group %s: %w", groupID, err)
	}
	return groupRows(rows), nil
}

// FindTeamByMember resolves the team a student belongs to within a group.
// Matching is case- and accent-insensitive so a student typing "Jose" still
// finds a roster entry stored as "José".
func (r *RosterRepository) FindTeamByMember(ctx context.Context, groupID, memberName string) (*models.Team, error) {
	teams, err := r.ListTeams(ctx, groupID)
	if err != nil {
		return nil, err
	}

	wanted := normalizeName(memberName)
	if wanted == "" {
		return nil, appErrors.ErrTeamNotFound
	}
	for i := range teams {
		for _, member := range teams[i].Members {
			if normalizeName(member) == wanted {
				return &teams[i], nil
			}
		}
	}
	return nil, appErrors.ErrTeamNotFound
}

// FindTeamByID loads a single team across all groups.
func (r *RosterRepository) FindTeamByID(ctx context.Context, teamID string) (*models.Team, error) {
	var rows []models.TeamMember
	query := `SELECT team_id, group_id, team_number, member_name FROM team_members WHERE team_id = $1 ORDER BY member_name ASC`
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("find team %s: %w", teamID, err)
	}
	if len(rows) == 0 {
		return nil, appErrors.ErrTeamNotFound
	}
	teams := groupRows(rows)
	return &teams[0], nil
}

func groupRows(rows []models.TeamMember) []models.Team {
	index := make(map[string]*models.Team)
	var order []string
	for _, row := range rows {
		team, ok := index[row.TeamID]
		if !ok {
			team = &models.Team{ID: row.TeamID, GroupID: row.GroupID, TeamNumber: row.TeamNumber}
			index[row.TeamID] = team
			order = append(order, row.TeamID)
		}
		team.Members = append(team.Members, row.MemberName)
	}

	teams := make([]models.Team, 0, len(order))
	for _, id := range order {
		teams = append(teams, *index[id])
	}
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].TeamNumber < teams[j].TeamNumber })
	return teams
}

// normalizeName lowercases, trims and strips the accents that appear in
// Spanish given names so roster lookups tolerate unaccented typing.
func normalizeName(name string) string {
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
		"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
	)
	return strings.ToLower(strings.TrimSpace(replacer.Replace(name)))
}
