package model

// PlayerStats holds per-player, per-match counters. It is owned by the
// participant that contains it and rebuilt when a match is finalized.
type PlayerStats struct {
	PlayerID     string `json:"player_id"`
	Name         string `json:"name,omitempty"`
	Runs         int    `json:"runs"`
	Balls        int    `json:"balls"`
	Fours        int    `json:"fours"`
	Sixes        int    `json:"sixes"`
	IsOut        bool   `json:"is_out,omitempty"`
	Wickets      int    `json:"wickets"`
	Catches      int    `json:"catches"`
	BallsBowled  int    `json:"balls_bowled"`
	RunsConceded int    `json:"runs_conceded"`
	RunOuts      int    `json:"runouts"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	YellowCards  int    `json:"yellow_cards"`
	RedCards     int    `json:"red_cards"`
}

// Cards is the total number of bookings.
func (p PlayerStats) Cards() int { return p.YellowCards + p.RedCards }

// Batted reports whether the player faced a ball or scored a run.
func (p PlayerStats) Batted() bool { return p.Balls > 0 || p.Runs > 0 }

// Bowled reports whether the player bowled at least one ball.
func (p PlayerStats) Bowled() bool { return p.BallsBowled > 0 }

// Fielded reports whether the player took a catch or effected a run-out.
func (p PlayerStats) Fielded() bool { return p.Catches > 0 || p.RunOuts > 0 }

// HasFootballStats reports whether any football counter is set.
func (p PlayerStats) HasFootballStats() bool {
	return p.Goals > 0 || p.Assists > 0 || p.Cards() > 0
}

// BattingStats is a player's aggregated batting record.
// Read-only query result, never persisted.
type BattingStats struct {
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	TeamName     string  `json:"team_name"`
	Matches      int     `json:"matches"`
	Runs         int     `json:"runs"`
	Balls        int     `json:"balls"`
	Fours        int     `json:"fours"`
	Sixes        int     `json:"sixes"`
	NotOuts      int     `json:"not_outs"`
	HighestScore int     `json:"highest_score"`
	Fifties      int     `json:"fifties"`
	Hundreds     int     `json:"hundreds"`
	Average      float64 `json:"average"`
	StrikeRate   float64 `json:"strike_rate"`
}

// BowlingFigures is a single-match bowling performance, e.g. 5/23.
type BowlingFigures struct {
	Wickets int `json:"wickets"`
	Runs    int `json:"runs"`
}

// BowlingStats is a player's aggregated bowling record.
type BowlingStats struct {
	PlayerID        string         `json:"player_id"`
	PlayerName      string         `json:"player_name"`
	TeamName        string         `json:"team_name"`
	Matches         int            `json:"matches"`
	Balls           int            `json:"balls"`
	Overs           string         `json:"overs"`
	RunsConceded    int            `json:"runs_conceded"`
	Wickets         int            `json:"wickets"`
	FiveWicketHauls int            `json:"five_wicket_hauls"`
	Best            BowlingFigures `json:"best"`
	Average         float64        `json:"average"`
	Economy         float64        `json:"economy"`
	StrikeRate      float64        `json:"strike_rate"`
}

// FieldingStats is a player's aggregated fielding record.
type FieldingStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	Matches    int    `json:"matches"`
	Catches    int    `json:"catches"`
	RunOuts    int    `json:"runouts"`
	Dismissals int    `json:"dismissals"`
}

// FootballStats is a player's aggregated football record.
type FootballStats struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	TeamName      string  `json:"team_name"`
	Matches       int     `json:"matches"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
	GoalsPerMatch float64 `json:"goals_per_match"`
}

// TeamStats is a team's standing across the included matches.
type TeamStats struct {
	TeamID            string  `json:"team_id"`
	TeamName          string  `json:"team_name"`
	Played            int     `json:"played"`
	Matches           int     `json:"matches"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Draws             int     `json:"draws"`
	TotalRunsScored   int     `json:"total_runs_scored"`
	TotalRunsConceded int     `json:"total_runs_conceded"`
	WinPercentage     float64 `json:"win_percentage"`
}
