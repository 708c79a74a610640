package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bharaths07/sportsv1.1-sub000/internal/achievement"
	"github.com/bharaths07/sportsv1.1-sub000/internal/engine"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/notify"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
	"github.com/bharaths07/sportsv1.1-sub000/internal/state"
)

// Deps are the collaborators of a MatchController. Publisher, Rosters,
// Notifier and Tournaments are optional.
type Deps struct {
	Store        *state.Store
	Matches      repository.MatchRepository
	Achievements repository.AchievementRepository
	Certificates repository.CertificateRepository
	Feed         repository.FeedRepository
	Publisher    repository.FeedPublisher
	Rosters      repository.RosterRepository
	Tx           repository.TxManager
	Notifier     Notifier
	Identity     IdentityProvider
	Tournaments  TournamentHook
	Now          func() time.Time
	NewID        func() string
}

// MatchController runs the match lifecycle. Mutations of one match are
// serialised; different matches proceed in parallel.
type MatchController struct {
	Deps
	log zerolog.Logger
}

func NewMatchController(deps Deps, logger zerolog.Logger) *MatchController {
	if deps.Store == nil {
		deps.Store = state.NewStore()
	}
	if deps.Identity == nil {
		deps.Identity = ContextIdentity{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &MatchController{Deps: deps, log: l}
}

// CreateMatchInput describes a new fixture.
type CreateMatchInput struct {
	SportID       string
	Title         string
	ScheduledAt   time.Time
	Venue         string
	HomeTeamID    string
	HomeName      string
	AwayTeamID    string
	AwayName      string
	TournamentID  string
	StageID       string
	OrganizerName string
	Status        model.MatchStatus
	Toss          *model.Toss
}

func (c *MatchController) CreateMatch(ctx context.Context, in CreateMatchInput) (model.Match, error) {
	in.SportID = strings.TrimSpace(in.SportID)
	in.HomeTeamID = strings.TrimSpace(in.HomeTeamID)
	in.AwayTeamID = strings.TrimSpace(in.AwayTeamID)
	if in.Status == "" {
		in.Status = model.StatusScheduled
	}

	var ferrs []FieldError
	if !model.KnownSport(in.SportID) {
		ferrs = append(ferrs, FieldError{Field: "sport_id", Message: "must be one of s1|s2|s3"})
	}
	if in.HomeTeamID == "" {
		ferrs = append(ferrs, FieldError{Field: "home_team_id", Message: "must be set"})
	}
	if in.AwayTeamID == "" {
		ferrs = append(ferrs, FieldError{Field: "away_team_id", Message: "must be set"})
	}
	if in.HomeTeamID != "" && in.HomeTeamID == in.AwayTeamID {
		ferrs = append(ferrs, FieldError{Field: "teams", Message: "home and away must differ"})
	}
	if in.ScheduledAt.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "scheduled_at", Message: "must be set"})
	}
	if !in.Status.NotStarted() {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of draft|scheduled|created"})
	}
	if in.Toss != nil {
		if in.Toss.WinnerID != in.HomeTeamID && in.Toss.WinnerID != in.AwayTeamID {
			ferrs = append(ferrs, FieldError{Field: "toss.winner_id", Message: "must be one of the two teams"})
		}
		if in.Toss.Decision != model.TossBat && in.Toss.Decision != model.TossBowl {
			ferrs = append(ferrs, FieldError{Field: "toss.decision", Message: "must be BAT or BOWL"})
		}
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		c.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed (structure)")
		return model.Match{}, err
	}

	// Names come from the roster when the caller leaves them out.
	var existenceErrs []FieldError
	for _, side := range []struct {
		field string
		id    string
		name  *string
	}{
		{"home_team_id", in.HomeTeamID, &in.HomeName},
		{"away_team_id", in.AwayTeamID, &in.AwayName},
	} {
		if strings.TrimSpace(*side.name) != "" {
			continue
		}
		if c.Rosters == nil {
			existenceErrs = append(existenceErrs, FieldError{Field: side.field, Message: "team name required"})
			continue
		}
		team, err := c.Rosters.GetTeam(ctx, side.id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				existenceErrs = append(existenceErrs, FieldError{Field: side.field, Message: "team does not exist"})
				continue
			}
			return model.Match{}, err
		}
		*side.name = team.Name
	}
	if err := NewInvalidInputError(existenceErrs); err != nil {
		c.log.Debug().Interface("field_errors", existenceErrs).Msg("match validation failed (existence)")
		return model.Match{}, err
	}

	now := c.Now().UTC()
	m := model.Match{
		ID:            c.NewID(),
		SportID:       in.SportID,
		Title:         strings.TrimSpace(in.Title),
		ScheduledAt:   in.ScheduledAt.UTC(),
		Venue:         strings.TrimSpace(in.Venue),
		Status:        in.Status,
		Home:          model.Participant{ID: in.HomeTeamID, Name: strings.TrimSpace(in.HomeName), Players: []model.PlayerStats{}},
		Away:          model.Participant{ID: in.AwayTeamID, Name: strings.TrimSpace(in.AwayName), Players: []model.PlayerStats{}},
		Events:        []model.ScoreEvent{},
		Toss:          in.Toss,
		TournamentID:  in.TournamentID,
		StageID:       in.StageID,
		OrganizerName: in.OrganizerName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if u, ok := c.Identity.CurrentUser(ctx); ok {
		m.CreatedByUserID = u.ID
		if m.OrganizerName == "" {
			m.OrganizerName = u.Name
		}
	}

	var out model.Match
	err := c.Tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := c.Matches.Create(ctx, m)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		c.log.Error().Err(err).Str("home_id", in.HomeTeamID).Str("away_id", in.AwayTeamID).Msg("create match failed")
		return model.Match{}, err
	}
	c.Store.Put(out)
	return out, nil
}

// GetMatch returns the in-memory match, loading it from the repository on a miss.
func (c *MatchController) GetMatch(ctx context.Context, id string) (model.Match, error) {
	if m, ok := c.Store.Get(id); ok {
		return m, nil
	}
	m, err := c.Matches.GetByID(ctx, id)
	if err != nil {
		return model.Match{}, err
	}
	c.Store.Put(m)
	return m, nil
}

// ListMatches pages the in-memory matches, newest schedule first.
func (c *MatchController) ListMatches(_ context.Context, page repository.Page) (repository.PageResult[model.Match], error) {
	p := page.Normalize()
	all := c.Store.Snapshot()
	sort.SliceStable(all, func(i, j int) bool { return all[i].ScheduledAt.After(all[j].ScheduledAt) })

	res := repository.PageResult[model.Match]{Items: []model.Match{}, Total: len(all)}
	if p.Offset >= len(all) {
		return res, nil
	}
	end := p.Offset + p.Limit
	if end > len(all) {
		end = len(all)
	}
	res.Items = all[p.Offset:end]
	return res, nil
}

// Refresh reloads matches from the repository. Local copies with writes
// that never reached the database are kept.
func (c *MatchController) Refresh(ctx context.Context) error {
	loaded, err := c.Matches.LoadMatches(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("load matches failed")
		return err
	}
	kept := c.Store.Reconcile(loaded)
	c.log.Info().Int("loaded", len(loaded)).Int("kept_local", kept).Msg("match state refreshed")
	return nil
}

// StartInput seeds the live state. All fields are optional.
type StartInput struct {
	BattingTeamID string
	StrikerID     string
	NonStrikerID  string
	BowlerID      string
}

// Start moves a not-started match to live. Any other status is a no-op.
func (c *MatchController) Start(ctx context.Context, id string, in StartInput) (Result, error) {
	unlock := c.Store.Locks.Lock(id)
	defer unlock()

	m, err := c.GetMatch(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if !m.Status.NotStarted() {
		c.log.Debug().Str("match_id", id).Str("status", string(m.Status)).Msg("start ignored")
		return Result{Match: m}, nil
	}

	now := c.Now().UTC()
	m.Status = model.StatusLive
	m.ActualStartTime = &now
	m.UpdatedAt = now
	if !model.IsFootball(m.SportID) {
		if m.Side(in.BattingTeamID) != nil {
			m.CurrentBattingTeamID = in.BattingTeamID
		}
		if m.CurrentBattingTeamID == "" {
			m.CurrentBattingTeamID = battingTeamFromToss(m)
		}
		m.LiveState = &model.LiveState{StrikerID: in.StrikerID, NonStrikerID: in.NonStrikerID, BowlerID: in.BowlerID}
	}

	res := c.commit(ctx, m)
	res.PersistErr = errors.Join(res.PersistErr,
		c.emitFeed(ctx, m, model.FeedMatchStarted, "Match started: "+m.Name()))
	c.notify(ctx, notify.Event{
		Type:  model.NotificationMatchStart,
		Title: "Match started",
		Body:  m.Name() + " is live",
		Key:   "match-start:" + m.ID,
	})
	c.log.Info().Str("match_id", id).Str("batting_team_id", m.CurrentBattingTeamID).Msg("match started")
	return res, nil
}

// battingTeamFromToss resolves who bats first; no toss means home.
func battingTeamFromToss(m model.Match) string {
	if m.Toss == nil || m.Side(m.Toss.WinnerID) == nil {
		return m.Home.ID
	}
	if m.Toss.Decision == model.TossBat {
		return m.Toss.WinnerID
	}
	return m.Opponent(m.Toss.WinnerID).ID
}

// Score applies one scoring input to a live match.
func (c *MatchController) Score(ctx context.Context, id string, in engine.ScoreInput) (Result, error) {
	unlock := c.Store.Locks.Lock(id)
	defer unlock()

	m, err := c.GetMatch(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if m.Status != model.StatusLive {
		c.log.Debug().Str("match_id", id).Str("status", string(m.Status)).Msg("score ignored; match not live")
		return Result{Match: m}, nil
	}

	now := c.Now().UTC()
	ev := engine.Normalize(in, m, now, c.NewID)
	next := engine.ApplyEvent(m, ev)
	next.UpdatedAt = now

	res := c.commit(ctx, next)
	res.PersistErr = errors.Join(res.PersistErr,
		c.emitFeed(ctx, next, model.FeedScoreUpdate, ev.Description+" | "+scoreline(next)))
	c.log.Debug().Str("match_id", id).Str("event_id", ev.ID).Str("type", string(ev.Type)).Int("points", ev.Points).Msg("event applied")
	return res, nil
}

// BattingTeamInput starts a new innings with the given side batting.
type BattingTeamInput struct {
	TeamID       string
	StrikerID    string
	NonStrikerID string
	BowlerID     string
}

// SetBattingTeam switches innings on a live cricket match and resets the
// crease. Anything else is a no-op.
func (c *MatchController) SetBattingTeam(ctx context.Context, id string, in BattingTeamInput) (Result, error) {
	unlock := c.Store.Locks.Lock(id)
	defer unlock()

	m, err := c.GetMatch(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if m.Status != model.StatusLive || model.IsFootball(m.SportID) || m.Side(in.TeamID) == nil {
		return Result{Match: m}, nil
	}
	m.CurrentBattingTeamID = in.TeamID
	m.LiveState = &model.LiveState{StrikerID: in.StrikerID, NonStrikerID: in.NonStrikerID, BowlerID: in.BowlerID}
	m.UpdatedAt = c.Now().UTC()
	return c.commit(ctx, m), nil
}

// End completes a match once: it settles the result, rebuilds final player
// stats from the rosters and derives achievements and certificates.
func (c *MatchController) End(ctx context.Context, id string) (Result, error) {
	unlock := c.Store.Locks.Lock(id)
	defer unlock()

	m, err := c.GetMatch(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if m.Status.Terminal() {
		c.log.Debug().Str("match_id", id).Str("status", string(m.Status)).Msg("end ignored; match already final")
		return Result{Match: m}, nil
	}

	now := c.Now().UTC()
	settle(&m)
	c.resolveRosters(ctx, &m)

	var persistErr error
	if c.alreadyDerived(ctx, id) {
		c.log.Debug().Str("match_id", id).Msg("achievements already derived; skipping")
	} else {
		out := achievement.Derive(achievement.Input{
			Match:         m,
			OrganizerName: m.OrganizerName,
			IssuedAt:      now,
			NewID:         c.NewID,
		})
		persistErr = c.saveDerived(ctx, id, out)
	}

	m.Status = model.StatusCompleted
	m.ActualEndTime = &now
	m.UpdatedAt = now
	res := c.commit(ctx, m)
	res.PersistErr = errors.Join(persistErr, res.PersistErr,
		c.emitFeed(ctx, m, model.FeedMatchCompleted, "Match completed: "+resultSummary(m)))

	c.notify(ctx, notify.Event{
		Type:  model.NotificationMatchResult,
		Title: "Match result",
		Body:  m.Name() + ": " + resultSummary(m),
		Key:   "match-result:" + m.ID,
	})
	if m.TournamentID != "" && c.Tournaments != nil {
		if err := c.Tournaments.MatchCompleted(ctx, m); err != nil {
			c.log.Warn().Err(err).Str("match_id", id).Str("tournament_id", m.TournamentID).Msg("tournament hook failed")
		}
	}
	c.log.Info().Str("match_id", id).Str("winner_id", m.WinnerID).Msg("match completed")
	return res, nil
}

// settle sets the winner and per-side results from the scores.
func settle(m *model.Match) {
	switch {
	case m.Home.Score > m.Away.Score:
		m.WinnerID = m.Home.ID
		m.Home.Result, m.Away.Result = model.ResultWin, model.ResultLoss
	case m.Away.Score > m.Home.Score:
		m.WinnerID = m.Away.ID
		m.Home.Result, m.Away.Result = model.ResultLoss, model.ResultWin
	default:
		m.WinnerID = ""
		m.Home.Result, m.Away.Result = model.ResultDraw, model.ResultDraw
	}
}

// resolveRosters rebuilds each side's players in roster order, keeping
// the stats gathered during play. Players seen in events but missing from
// the roster are appended so nothing scored is lost.
func (c *MatchController) resolveRosters(ctx context.Context, m *model.Match) {
	if c.Rosters == nil {
		return
	}
	for _, side := range []*model.Participant{&m.Home, &m.Away} {
		members, err := c.Rosters.Members(ctx, side.ID)
		if err != nil {
			c.log.Warn().Err(err).Str("team_id", side.ID).Msg("roster lookup failed; keeping event players")
			continue
		}
		if len(members) == 0 {
			continue
		}
		players := make([]model.PlayerStats, 0, len(members)+len(side.Players))
		seen := make(map[string]bool, len(members))
		for _, mem := range members {
			ps := model.PlayerStats{PlayerID: mem.PlayerID, Name: mem.Name}
			if i := side.Player(mem.PlayerID); i >= 0 {
				ps = side.Players[i]
				if ps.Name == "" {
					ps.Name = mem.Name
				}
			}
			seen[mem.PlayerID] = true
			players = append(players, ps)
		}
		for _, ps := range side.Players {
			if !seen[ps.PlayerID] && !model.IsPlaceholderID(ps.PlayerID) {
				players = append(players, ps)
			}
		}
		side.Players = players
	}
}

// alreadyDerived checks local fallbacks first, then the repository.
// A match without achievements still issues participation certificates,
// so either record set marks the match as derived.
func (c *MatchController) alreadyDerived(ctx context.Context, id string) bool {
	if c.Store.HasAchievements(id) || c.Store.HasCertificates(id) {
		return true
	}
	exists, err := c.Achievements.ExistsForMatch(ctx, id)
	if err != nil {
		c.log.Warn().Err(err).Str("match_id", id).Msg("achievement existence check failed")
		return false
	}
	if exists {
		return true
	}
	exists, err = c.Certificates.ExistsForMatch(ctx, id)
	if err != nil {
		c.log.Warn().Err(err).Str("match_id", id).Msg("certificate existence check failed")
		return false
	}
	return exists
}

// saveDerived persists achievements and certificates in one transaction.
// On failure both sets are kept locally so readers still see them.
func (c *MatchController) saveDerived(ctx context.Context, id string, out achievement.Output) error {
	err := c.Tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, a := range out.Achievements {
			if err := c.Achievements.CreateAchievement(ctx, a); err != nil {
				return err
			}
		}
		for _, cert := range out.Certificates {
			if err := c.Certificates.CreateCertificate(ctx, cert); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.log.Error().Err(err).Str("match_id", id).Int("achievements", len(out.Achievements)).Msg("persist derived records failed; keeping locally")
		c.Store.AddAchievements(id, out.Achievements)
		c.Store.AddCertificates(id, out.Certificates)
		return fmt.Errorf("persist derived records: %w", err)
	}
	c.log.Info().Str("match_id", id).Int("achievements", len(out.Achievements)).Int("certificates", len(out.Certificates)).Msg("derived records saved")
	return nil
}

// Cancel marks a match cancelled unless it is already final.
func (c *MatchController) Cancel(ctx context.Context, id string) (Result, error) {
	return c.setStatus(ctx, id, model.StatusCancelled, func(s model.MatchStatus) bool { return !s.Terminal() })
}

// Lock freezes a match that has not reached a final status. Locked matches are excluded from statistics.
func (c *MatchController) Lock(ctx context.Context, id string) (Result, error) {
	return c.setStatus(ctx, id, model.StatusLocked, func(s model.MatchStatus) bool { return !s.Terminal() })
}

func (c *MatchController) setStatus(ctx context.Context, id string, to model.MatchStatus, allowed func(model.MatchStatus) bool) (Result, error) {
	unlock := c.Store.Locks.Lock(id)
	defer unlock()

	m, err := c.GetMatch(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if !allowed(m.Status) {
		return Result{Match: m}, nil
	}
	m.Status = to
	m.UpdatedAt = c.Now().UTC()
	c.Store.Put(m)

	res := Result{Match: m, Changed: true}
	if err := c.Matches.SaveMatchUpdate(ctx, id, repository.MatchUpdate{Status: &to}); err != nil {
		c.log.Error().Err(err).Str("match_id", id).Str("status", string(to)).Msg("persist status failed")
		res.PersistErr = err
	}
	return res, nil
}

// AssignScorer lets an admin grant scoring rights. Non-admin callers get a no-op.
func (c *MatchController) AssignScorer(ctx context.Context, id, userID string) (Result, error) {
	return c.editScorers(ctx, id, userID, true)
}

// RemoveScorer lets an admin revoke scoring rights. Non-admin callers get a no-op.
func (c *MatchController) RemoveScorer(ctx context.Context, id, userID string) (Result, error) {
	return c.editScorers(ctx, id, userID, false)
}

func (c *MatchController) editScorers(ctx context.Context, id, userID string, add bool) (Result, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Result{}, NewInvalidInputError([]FieldError{{Field: "user_id", Message: "must be set"}})
	}

	unlock := c.Store.Locks.Lock(id)
	defer unlock()

	m, err := c.GetMatch(ctx, id)
	if err != nil {
		return Result{}, err
	}
	caller, ok := c.Identity.CurrentUser(ctx)
	if !ok || !caller.IsAdmin() {
		c.log.Debug().Str("match_id", id).Str("caller_id", caller.ID).Msg("scorer change ignored; caller is not admin")
		return Result{Match: m}, nil
	}
	if m.HasScorer(userID) == add {
		return Result{Match: m}, nil
	}
	if add {
		m.ScorerIDs = append(m.ScorerIDs, userID)
	} else {
		kept := m.ScorerIDs[:0]
		for _, s := range m.ScorerIDs {
			if s != userID {
				kept = append(kept, s)
			}
		}
		m.ScorerIDs = kept
	}
	m.UpdatedAt = c.Now().UTC()
	return c.commit(ctx, m), nil
}

// ListAchievements merges persisted and locally held achievements.
func (c *MatchController) ListAchievements(ctx context.Context, id string) ([]model.Achievement, error) {
	if _, err := c.GetMatch(ctx, id); err != nil {
		return nil, err
	}
	out, err := c.Achievements.ListByMatch(ctx, id)
	if err != nil {
		c.log.Warn().Err(err).Str("match_id", id).Msg("list achievements failed; serving local copy")
		out = nil
	}
	return append(out, c.Store.Achievements(id)...), nil
}

// ListCertificates merges persisted and locally held certificates.
func (c *MatchController) ListCertificates(ctx context.Context, id string) ([]model.Certificate, error) {
	if _, err := c.GetMatch(ctx, id); err != nil {
		return nil, err
	}
	out, err := c.Certificates.ListByMatch(ctx, id)
	if err != nil {
		c.log.Warn().Err(err).Str("match_id", id).Msg("list certificates failed; serving local copy")
		out = nil
	}
	return append(out, c.Store.Certificates(id)...), nil
}

// ListFeed returns the newest feed items first.
func (c *MatchController) ListFeed(ctx context.Context, id string, limit int) ([]model.FeedItem, error) {
	if _, err := c.GetMatch(ctx, id); err != nil {
		return nil, err
	}
	limit = repository.Page{Limit: limit}.Normalize().Limit
	out, err := c.Feed.ListByMatch(ctx, id, limit)
	if err != nil {
		c.log.Warn().Err(err).Str("match_id", id).Msg("list feed failed; serving local copy")
		out = nil
	}
	out = append(out, c.Store.FeedItems(id)...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// commit stores m and writes its snapshot. The local state stays even if
// the write fails.
func (c *MatchController) commit(ctx context.Context, m model.Match) Result {
	c.Store.Put(m)
	res := Result{Match: m, Changed: true}
	if err := c.Matches.SaveMatchUpdate(ctx, m.ID, repository.MatchUpdate{Snapshot: &m}); err != nil {
		c.log.Error().Err(err).Str("match_id", m.ID).Msg("persist match failed")
		res.PersistErr = err
	}
	return res
}

// emitFeed persists a feed item and publishes it to live subscribers. Only
// the persistence error is returned; the stream is best effort.
func (c *MatchController) emitFeed(ctx context.Context, m model.Match, typ, text string) error {
	item := model.FeedItem{ID: c.NewID(), MatchID: m.ID, Type: typ, Text: text, CreatedAt: c.Now().UTC()}

	var err error
	if perr := c.Feed.CreateFeedItem(ctx, item); perr != nil {
		c.log.Error().Err(perr).Str("match_id", m.ID).Str("type", typ).Msg("persist feed item failed; keeping locally")
		c.Store.AddFeedItem(item)
		err = fmt.Errorf("persist feed item: %w", perr)
	}
	if c.Publisher != nil {
		if perr := c.Publisher.PublishFeedItem(ctx, m.SportID, item); perr != nil {
			c.log.Warn().Err(perr).Str("match_id", m.ID).Msg("publish feed item failed")
		}
	}
	return err
}

func (c *MatchController) notify(ctx context.Context, ev notify.Event) {
	if c.Notifier == nil {
		return
	}
	if _, err := c.Notifier.MaybeNotify(ctx, ev); err != nil {
		c.log.Warn().Err(err).Str("key", ev.Key).Msg("notification failed")
	}
}

// scoreline renders the running score, e.g. "Lions 45/2 (5.3) v Tigers 0/0 (0.0)".
func scoreline(m model.Match) string {
	if model.IsFootball(m.SportID) {
		return fmt.Sprintf("%s %d-%d %s", m.Home.Name, m.Home.Score, m.Away.Score, m.Away.Name)
	}
	return fmt.Sprintf("%s %d/%d (%s) v %s %d/%d (%s)",
		m.Home.Name, m.Home.Score, m.Home.Wickets, m.Home.Overs(),
		m.Away.Name, m.Away.Score, m.Away.Wickets, m.Away.Overs())
}

func resultSummary(m model.Match) string {
	winner := m.Side(m.WinnerID)
	if winner == nil {
		return "match drawn (" + scoreline(m) + ")"
	}
	loser := m.Opponent(m.WinnerID)
	margin := winner.Score - loser.Score
	unit := "runs"
	if model.IsFootball(m.SportID) {
		unit = "goals"
	}
	if margin == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return fmt.Sprintf("%s won by %d %s (%s)", winner.Name, margin, unit, scoreline(m))
}
