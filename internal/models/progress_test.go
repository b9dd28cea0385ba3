package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrozenStates(t *testing.T) {
	assert.False(t, TeamProgress{ApprovalStatus: ApprovalNone}.Frozen())
	assert.True(t, TeamProgress{ApprovalStatus: ApprovalPending}.Frozen())
	assert.True(t, TeamProgress{ApprovalStatus: ApprovalApproved}.Frozen())
	assert.False(t, TeamProgress{ApprovalStatus: ApprovalRejected}.Frozen())
}

func TestTeamProgressCloneIsDeep(t *testing.T) {
	original := TeamProgress{
		TeamID: "5A-1",
		Data: map[int]ModuleData{
			1: {"pregunta_1": TextValue("original")},
		},
	}

	clone := original.Clone()
	clone.Data[1]["pregunta_1"] = TextValue("mutated")
	clone.Data[2] = ModuleData{}

	assert.Equal(t, TextValue("original"), original.Data[1]["pregunta_1"])
	assert.NotContains(t, original.Data, 2)
}
