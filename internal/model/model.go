// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior here is
// small helpers that read the shapes (copies, lookups, over notation).
package model

import (
	"fmt"
	"time"
)

// Sport identifiers known to the core. Anything that is not football is
// scored as cricket.
const (
	SportCricket    = "s1"
	SportBoxCricket = "s2"
	SportFootball   = "s3"
)

// SportName returns the display name for a sport id.
func SportName(sportID string) string {
	switch sportID {
	case SportCricket:
		return "Cricket"
	case SportBoxCricket:
		return "Box Cricket"
	case SportFootball:
		return "Football"
	default:
		return "Unknown"
	}
}

// KnownSport reports whether sportID is one of the supported sports.
func KnownSport(sportID string) bool { return SportName(sportID) != "Unknown" }

// IsFootball reports whether the sport id is scored as football.
func IsFootball(sportID string) bool { return sportID == SportFootball }

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	StatusDraft     MatchStatus = "draft"
	StatusScheduled MatchStatus = "scheduled"
	StatusCreated   MatchStatus = "created"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
	StatusCancelled MatchStatus = "cancelled"
	StatusLocked    MatchStatus = "locked"
)

// NotStarted reports whether a match in this status may be started.
func (s MatchStatus) NotStarted() bool {
	return s == StatusDraft || s == StatusScheduled || s == StatusCreated
}

// Terminal reports whether no further transition is allowed.
func (s MatchStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusLocked
}

// Valid reports whether s is a known status.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusCreated, StatusLive, StatusCompleted, StatusCancelled, StatusLocked:
		return true
	}
	return false
}

// Result is the post-match outcome of one participant.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// TossDecision is what the toss winner elected to do.
type TossDecision string

const (
	TossBat  TossDecision = "BAT"
	TossBowl TossDecision = "BOWL"
)

// Toss records the toss result of a cricket match.
type Toss struct {
	WinnerID string       `json:"winner_id"`
	Decision TossDecision `json:"decision"`
}

// LiveState tracks who is at the crease and the over/ball counters (cricket only).
type LiveState struct {
	StrikerID    string `json:"striker_id,omitempty"`
	NonStrikerID string `json:"non_striker_id,omitempty"`
	BowlerID     string `json:"bowler_id,omitempty"`
	Over         int    `json:"over"`
	Ball         int    `json:"ball"`
}

// Participant is one side of a match with its running totals.
type Participant struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Score   int           `json:"score"`
	Wickets int           `json:"wickets"`
	Balls   int           `json:"balls"`
	Players []PlayerStats `json:"players"`
	Result  Result        `json:"result,omitempty"`
}

// Overs renders legal balls in cricket over notation (e.g. 3.4).
func (p Participant) Overs() string { return OversNotation(p.Balls) }

// Player returns the index of the player's stats entry, or -1.
func (p Participant) Player(playerID string) int {
	for i := range p.Players {
		if p.Players[i].PlayerID == playerID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the participant.
func (p Participant) Clone() Participant {
	out := p
	if p.Players != nil {
		out.Players = make([]PlayerStats, len(p.Players))
		copy(out.Players, p.Players)
	}
	return out
}

// OversNotation formats a legal ball count as overs.balls.
func OversNotation(balls int) string {
	return fmt.Sprintf("%d.%d", balls/6, balls%6)
}

// Match is a single contest between two participants.
type Match struct {
	ID                   string       `json:"id"`
	SportID              string       `json:"sport_id"`
	Title                string       `json:"title,omitempty"`
	ScheduledAt          time.Time    `json:"scheduled_at"`
	Venue                string       `json:"venue"`
	Status               MatchStatus  `json:"status"`
	Home                 Participant  `json:"home"`
	Away                 Participant  `json:"away"`
	Events               []ScoreEvent `json:"events"`
	LiveState            *LiveState   `json:"live_state,omitempty"`
	Toss                 *Toss        `json:"toss,omitempty"`
	CurrentBattingTeamID string       `json:"current_batting_team_id,omitempty"`
	WinnerID             string       `json:"winner_id,omitempty"`
	TournamentID         string       `json:"tournament_id,omitempty"`
	StageID              string       `json:"stage_id,omitempty"`
	ActualStartTime      *time.Time   `json:"actual_start_time,omitempty"`
	ActualEndTime        *time.Time   `json:"actual_end_time,omitempty"`
	CreatedByUserID      string       `json:"created_by_user_id,omitempty"`
	OrganizerName        string       `json:"organizer_name,omitempty"`
	ScorerIDs            []string     `json:"scorer_ids,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// Name is the human readable match name used on feed items and certificates.
func (m Match) Name() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Home.Name + " vs " + m.Away.Name
}

// Side returns a pointer to the participant with the given id, or nil.
func (m *Match) Side(teamID string) *Participant {
	switch {
	case teamID == "":
		return nil
	case m.Home.ID == teamID:
		return &m.Home
	case m.Away.ID == teamID:
		return &m.Away
	}
	return nil
}

// Opponent returns the side that is not teamID, or nil if teamID is unknown.
func (m *Match) Opponent(teamID string) *Participant {
	switch {
	case teamID == "":
		return nil
	case m.Home.ID == teamID:
		return &m.Away
	case m.Away.ID == teamID:
		return &m.Home
	}
	return nil
}

// Clone returns a deep copy so callers never share mutable sub-objects.
func (m Match) Clone() Match {
	out := m
	out.Home = m.Home.Clone()
	out.Away = m.Away.Clone()
	if m.Events != nil {
		out.Events = make([]ScoreEvent, len(m.Events))
		copy(out.Events, m.Events)
	}
	if m.LiveState != nil {
		ls := *m.LiveState
		out.LiveState = &ls
	}
	if m.Toss != nil {
		t := *m.Toss
		out.Toss = &t
	}
	if m.ActualStartTime != nil {
		t := *m.ActualStartTime
		out.ActualStartTime = &t
	}
	if m.ActualEndTime != nil {
		t := *m.ActualEndTime
		out.ActualEndTime = &t
	}
	if m.ScorerIDs != nil {
		out.ScorerIDs = append([]string(nil), m.ScorerIDs...)
	}
	return out
}

// HasScorer reports whether userID is an assigned scorer.
func (m Match) HasScorer(userID string) bool {
	for _, id := range m.ScorerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Role is the identity collaborator's coarse permission level.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is the current caller as supplied by the identity collaborator.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the user may manage scorers and attributions.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Team is a roster owner. Members are resolved at match end.
type Team struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Members   []TeamMember `json:"members"`
	CreatedAt time.Time    `json:"created_at"`
}

// TeamMember is one squad member of a team.
type TeamMember struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// FeedItem is a user-facing timeline entry for a match.
type FeedItem struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed item types.
const (
	FeedMatchStarted   = "match_started"
	FeedScoreUpdate    = "score_update"
	FeedMatchCompleted = "match_completed"
)
