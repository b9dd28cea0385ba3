package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

func newRosterMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestRosterRepositoryListGroups(t *testing.T) {
	db, mock, cleanup := newRosterMock(t)
	defer cleanup()
	repo := NewRosterRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT group_id FROM team_members ORDER BY group_id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}).AddRow("5A").AddRow("5B"))

	groups, err := repo.ListGroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"5A", "5B"}, groups)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepositoryListTeamsGroupsMembers(t *testing.T) {
	db, mock, cleanup := newRosterMock(t)
	defer cleanup()
	repo := NewRosterRepository(db)

	rows := sqlmock.NewRows([]string{"team_id", "group_id", "team_number", "member_name"}).
		AddRow("5A-1", "5A", 1, "Ana López").
		AddRow("5A-1", "5A", 1, "José Pérez").
		AddRow("5A-2", "5A", 2, "María Ñuñez")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT team_id, group_id, team_number, member_name FROM team_members WHERE group_id = $1 ORDER BY team_number ASC, member_name ASC")).
		WithArgs("5A").
		WillReturnRows(rows)

	teams, err := repo.ListTeams(context.Background(), "5A")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "5A-1", teams[0].ID)
	assert.Equal(t, []string{"Ana López", "José Pérez"}, teams[0].Members)
	assert.Equal(t, 2, teams[1].TeamNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepositoryFindTeamByMemberAccentInsensitive(t *testing.T) {
	db, mock, cleanup := newRosterMock(t)
	defer cleanup()
	repo := NewRosterRepository(db)

	rows := sqlmock.NewRows([]string{"team_id", "group_id", "team_number", "member_name"}).
		AddRow("5A-1", "5A", 1, "José Pérez")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT team_id, group_id, team_number, member_name FROM team_members WHERE group_id = $1")).
		WithArgs("5A").
		WillReturnRows(rows)

	team, err := repo.FindTeamByMember(context.Background(), "5A", "  jose perez ")
	require.NoError(t, err)
	assert.Equal(t, "5A-1", team.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepositoryFindTeamByMemberNotFound(t *testing.T) {
	db, mock, cleanup := newRosterMock(t)
	defer cleanup()
	repo := NewRosterRepository(db)

	rows := sqlmock.NewRows([]string{"team_id", "group_id", "team_number", "member_name"}).
		AddRow("5A-1", "5A", 1, "Ana López")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT team_id, group_id, team_number, member_name FROM team_members WHERE group_id = $1")).
		WithArgs("5A").
		WillReturnRows(rows)

	_, err := repo.FindTeamByMember(context.Background(), "5A", "Pedro")
	assert.True(t, errors.Is(err, appErrors.ErrTeamNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepositoryFindTeamByID(t *testing.T) {
	db, mock, cleanup := newRosterMock(t)
	defer cleanup()
	repo := NewRosterRepository(db)

	rows := sqlmock.NewRows([]string{"team_id", "group_id", "team_number", "member_name"}).
		AddRow("5B-3", "5B", 3, "Luis").
		AddRow("5B-3", "5B", 3, "Sofía")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT team_id, group_id, team_number, member_name FROM team_members WHERE team_id = $1 ORDER BY member_name ASC")).
		WithArgs("5B-3").
		WillReturnRows(rows)

	team, err := repo.FindTeamByID(context.Background(), "5B-3")
	require.NoError(t, err)
	assert.Equal(t, "5B", team.GroupID)
	assert.Len(t, team.Members, 2)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT team_id, group_id, team_number, member_name FROM team_members WHERE team_id = $1")).
		WithArgs("none").
		WillReturnRows(sqlmock.NewRows([]string{"team_id", "group_id", "team_number", "member_name"}))

	_, err = repo.FindTeamByID(context.Background(), "none")
	assert.True(t, errors.Is(err, appErrors.ErrTeamNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
