package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bharaths07/sportsv1.1-sub000/internal/engine"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
	"github.com/bharaths07/sportsv1.1-sub000/pkg/response"
)

// MatchHandler exposes match lifecycle and scoring endpoints.
type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group(matchesGroup)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)

	g.POST("/:id/start", h.Start)
	g.POST("/:id/score", h.Score)
	g.POST("/:id/end", h.command(h.svc.End))
	g.POST("/:id/cancel", h.command(h.svc.Cancel))
	g.POST("/:id/lock", h.command(h.svc.Lock))
	g.POST("/:id/batting-team", h.SetBattingTeam)

	g.POST("/:id/scorers", h.AssignScorer)
	g.DELETE("/:id/scorers/:user_id", h.RemoveScorer)

	g.GET("/:id/achievements", h.Achievements)
	g.GET("/:id/certificates", h.Certificates)
	g.GET("/:id/feed", h.Feed)
}

type tossRequest struct {
	WinnerID string `json:"winner_id"`
	Decision string `json:"decision"`
}

// createMatchRequest is only shape-checked here; field rules live in the
// service so every caller gets the same aggregated errors.
type createMatchRequest struct {
	SportID       string       `json:"sport_id"`
	Title         string       `json:"title"`
	ScheduledAt   time.Time    `json:"scheduled_at"`
	Venue         string       `json:"venue"`
	HomeTeamID    string       `json:"home_team_id"`
	HomeName      string       `json:"home_name"`
	AwayTeamID    string       `json:"away_team_id"`
	AwayName      string       `json:"away_name"`
	TournamentID  string       `json:"tournament_id"`
	StageID       string       `json:"stage_id"`
	OrganizerName string       `json:"organizer_name"`
	Status        string       `json:"status"`
	Toss          *tossRequest `json:"toss"`
}

func (r createMatchRequest) input() service.CreateMatchInput {
	in := service.CreateMatchInput{
		SportID:       r.SportID,
		Title:         r.Title,
		ScheduledAt:   r.ScheduledAt,
		Venue:         r.Venue,
		HomeTeamID:    r.HomeTeamID,
		HomeName:      r.HomeName,
		AwayTeamID:    r.AwayTeamID,
		AwayName:      r.AwayName,
		TournamentID:  r.TournamentID,
		StageID:       r.StageID,
		OrganizerName: r.OrganizerName,
		Status:        model.MatchStatus(r.Status),
	}
	if r.Toss != nil {
		in.Toss = &model.Toss{WinnerID: r.Toss.WinnerID, Decision: model.TossDecision(r.Toss.Decision)}
	}
	return in
}

func (h *MatchHandler) Create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	m, err := h.svc.CreateMatch(c.Request.Context(), req.input())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, m)
}

func (h *MatchHandler) List(c *gin.Context) {
	page := repository.Page{
		Limit:  queryInt(c, "limit", repository.DefaultPageLimit),
		Offset: queryInt(c, "offset", 0),
	}
	res, err := h.svc.ListMatches(c.Request.Context(), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *MatchHandler) Get(c *gin.Context) {
	m, err := h.svc.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

type startRequest struct {
	BattingTeamID string `json:"batting_team_id"`
	StrikerID     string `json:"striker_id"`
	NonStrikerID  string `json:"non_striker_id"`
	BowlerID      string `json:"bowler_id"`
}

// Start accepts an empty body.
func (h *MatchHandler) Start(c *gin.Context) {
	var req startRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.WriteError(c, bindError(err))
			return
		}
	}
	res, err := h.svc.Start(c.Request.Context(), c.Param("id"), service.StartInput{
		BattingTeamID: req.BattingTeamID,
		StrikerID:     req.StrikerID,
		NonStrikerID:  req.NonStrikerID,
		BowlerID:      req.BowlerID,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteCommand(c, res)
}

type extrasRequest struct {
	Type string `json:"type" binding:"required,oneof=wide no_ball bye leg_bye penalty"`
	Runs int    `json:"runs" binding:"min=0,max=10"`
}

// scoreRequest carries either the legacy {runs, is_wicket} call or a
// partial event. A body with "runs" and no "type" is treated as legacy.
type scoreRequest struct {
	Runs          *int           `json:"runs" binding:"omitempty,min=0,max=7"`
	IsWicket      bool           `json:"is_wicket"`
	Type          string         `json:"type" binding:"omitempty,oneof=delivery wicket extra goal card assist note"`
	TeamID        string         `json:"team_id"`
	Points        *int           `json:"points" binding:"omitempty,min=0"`
	RunsScored    int            `json:"runs_scored" binding:"min=0,max=7"`
	Extras        *extrasRequest `json:"extras"`
	DismissalType string         `json:"dismissal_type" binding:"omitempty,oneof=bowled caught lbw run_out stumped hit_wicket"`
	ScorerID      string         `json:"scorer_id"`
	AssistID      string         `json:"assist_id"`
	BowlerID      string         `json:"bowler_id"`
	FielderID     string         `json:"fielder_id"`
	CardType      string         `json:"card_type" binding:"omitempty,oneof=yellow red"`
	Description   string         `json:"description"`
}

func (r scoreRequest) input() engine.ScoreInput {
	if r.Runs != nil && r.Type == "" {
		return engine.LegacyScoreInput{Runs: *r.Runs, IsWicket: r.IsWicket}
	}
	in := engine.EventInput{
		Type:          model.EventType(r.Type),
		TeamID:        r.TeamID,
		Points:        r.Points,
		RunsScored:    r.RunsScored,
		IsWicket:      r.IsWicket,
		DismissalType: model.DismissalType(r.DismissalType),
		ScorerID:      r.ScorerID,
		AssistID:      r.AssistID,
		BowlerID:      r.BowlerID,
		FielderID:     r.FielderID,
		CardType:      model.CardType(r.CardType),
		Description:   r.Description,
	}
	if r.Extras != nil {
		in.Extras = &model.Extras{Type: model.ExtraType(r.Extras.Type), Runs: r.Extras.Runs}
	}
	return in
}

func (h *MatchHandler) Score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	res, err := h.svc.Score(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteCommand(c, res)
}

type battingTeamRequest struct {
	TeamID       string `json:"team_id" binding:"required"`
	StrikerID    string `json:"striker_id"`
	NonStrikerID string `json:"non_striker_id"`
	BowlerID     string `json:"bowler_id"`
}

func (h *MatchHandler) SetBattingTeam(c *gin.Context) {
	var req battingTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	res, err := h.svc.SetBattingTeam(c.Request.Context(), c.Param("id"), service.BattingTeamInput{
		TeamID:       req.TeamID,
		StrikerID:    req.StrikerID,
		NonStrikerID: req.NonStrikerID,
		BowlerID:     req.BowlerID,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteCommand(c, res)
}

type scorerRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *MatchHandler) AssignScorer(c *gin.Context) {
	var req scorerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	res, err := h.svc.AssignScorer(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteCommand(c, res)
}

func (h *MatchHandler) RemoveScorer(c *gin.Context) {
	res, err := h.svc.RemoveScorer(c.Request.Context(), c.Param("id"), c.Param("user_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteCommand(c, res)
}

func (h *MatchHandler) Achievements(c *gin.Context) {
	items, err := h.svc.ListAchievements(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": items})
}

func (h *MatchHandler) Certificates(c *gin.Context) {
	items, err := h.svc.ListCertificates(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": items})
}

func (h *MatchHandler) Feed(c *gin.Context) {
	items, err := h.svc.ListFeed(c.Request.Context(), c.Param("id"), queryInt(c, "limit", repository.DefaultPageLimit))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": items})
}

// command adapts the id-only commands (end, cancel, lock).
func (h *MatchHandler) command(fn func(ctx context.Context, id string) (service.Result, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := fn(c.Request.Context(), c.Param("id"))
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteCommand(c, res)
	}
}
