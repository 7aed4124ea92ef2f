package models

// TimestampLayout is the minute-precision layout used for all stored
// timestamps, e.g. "2025-03-14T21:07".
const TimestampLayout = "2006-01-02T15:04"

// Game represents a single four-player individual game record
type Game struct {
	ID           int64  `json:"id" db:"id"`
	CreatedAt    string `json:"created_at" db:"created_at"`
	Player1Name  string `json:"player1_name" db:"player1_name"`
	Player2Name  string `json:"player2_name" db:"player2_name"`
	Player3Name  string `json:"player3_name" db:"player3_name"`
	Player4Name  string `json:"player4_name" db:"player4_name"`
	Player1Score int    `json:"player1_score" db:"player1_score"`
	Player2Score int    `json:"player2_score" db:"player2_score"`
	Player3Score int    `json:"player3_score" db:"player3_score"`
	Player4Score int    `json:"player4_score" db:"player4_score"`
}

// Names returns the four player names in seat order
func (g *Game) Names() [4]string {
	return [4]string{g.Player1Name, g.Player2Name, g.Player3Name, g.Player4Name}
}

// Scores returns the four raw scores in seat order
func (g *Game) Scores() [4]int {
	return [4]int{g.Player1Score, g.Player2Score, g.Player3Score, g.Player4Score}
}
