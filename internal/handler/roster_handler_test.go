package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mentoraqua/guardianes-api/internal/dto"
	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

type rosterServiceMock struct {
	groups   *dto.GroupsResponse
	login    *dto.LoginResponse
	loginErr error
	lastReq  dto.LoginRequest
}

func (m *rosterServiceMock) Groups(context.Context) (*dto.GroupsResponse, error) {
	return m.groups, nil
}

func (m *rosterServiceMock) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	m.lastReq = req
	return m.login, m.loginErr
}

func TestRosterHandlerGroups(t *testing.T) {
	h := NewRosterHandler(&rosterServiceMock{groups: &dto.GroupsResponse{Groups: []string{"5A", "5B"}}})

	c, w := testContext(t, http.MethodGet, "/roster/groups", nil, nil)
	h.Groups(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"groups":["5A","5B"]`)
}

func TestRosterHandlerLogin(t *testing.T) {
	mockSvc := &rosterServiceMock{login: &dto.LoginResponse{
		Team:                  models.Team{ID: "5A-1", GroupID: "5A", TeamNumber: 1},
		Progress:              models.TeamProgress{TeamID: "5A-1", ApprovalStatus: models.ApprovalNone},
		NeedsProjectSelection: true,
	}}
	h := NewRosterHandler(mockSvc)

	c, w := testContext(t, http.MethodPost, "/roster/login",
		map[string]string{"groupId": "5A", "memberName": "Ana López"}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana López", mockSvc.lastReq.MemberName)
	assert.Contains(t, w.Body.String(), `"needsProjectSelection":true`)
}

func TestRosterHandlerLoginUnknownMember(t *testing.T) {
	h := NewRosterHandler(&rosterServiceMock{loginErr: appErrors.ErrTeamNotFound})

	c, w := testContext(t, http.MethodPost, "/roster/login",
		map[string]string{"groupId": "5A", "memberName": "Nadie"}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRosterHandlerLoginMalformedBody(t *testing.T) {
	h := NewRosterHandler(&rosterServiceMock{})

	c, w := testContext(t, http.MethodPost, "/roster/login", "not-an-object", nil)
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
