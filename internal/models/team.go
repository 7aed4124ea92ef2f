package models

// Team represents a named team roster entry
type Team struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// TeamMember links a player to a team. The link is by team name, not by
// team id: the relation is maintained as free text and is never enforced
// against the teams table.
type TeamMember struct {
	ID         int64  `json:"id" db:"id"`
	TeamName   string `json:"team_name" db:"team_name"`
	PlayerName string `json:"player_name" db:"player_name"`
	JoinedAt   string `json:"joined_at" db:"joined_at"`
}

// TeamGame represents a four-player team game record. Player and team
// names are stored as free text per seat, same as TeamMember.
type TeamGame struct {
	ID        int64  `json:"id" db:"id"`
	CreatedAt string `json:"created_at" db:"created_at"`

	P1PlayerName string `json:"p1_player_name" db:"p1_player_name"`
	P1TeamName   string `json:"p1_team_name" db:"p1_team_name"`
	P1Score      int    `json:"p1_score" db:"p1_score"`

	P2PlayerName string `json:"p2_player_name" db:"p2_player_name"`
	P2TeamName   string `json:"p2_team_name" db:"p2_team_name"`
	P2Score      int    `json:"p2_score" db:"p2_score"`

	P3PlayerName string `json:"p3_player_name" db:"p3_player_name"`
	P3TeamName   string `json:"p3_team_name" db:"p3_team_name"`
	P3Score      int    `json:"p3_score" db:"p3_score"`

	P4PlayerName string `json:"p4_player_name" db:"p4_player_name"`
	P4TeamName   string `json:"p4_team_name" db:"p4_team_name"`
	P4Score      int    `json:"p4_score" db:"p4_score"`
}
