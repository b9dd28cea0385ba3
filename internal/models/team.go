package models

// Team is an immutable roster entry assigned by the teacher before the
// project starts. Students never edit it; login resolves a member name to
// the team it belongs to.
type Team struct {
	ID         string   `db:"id" json:"id"`
	GroupID    string   `db:"group_id" json:"groupId"`
	TeamNumber int      `db:"team_number" json:"teamNumber"`
	Members    []string `json:"members"`
}

// TeamMember is a single roster row joining a student name to a team.
type TeamMember struct {
	TeamID     string `db:"team_id"`
	GroupID    string `db:"group_id"`
	TeamNumber int    `db:"team_number"`
	MemberName string `db:"member_name"`
}
