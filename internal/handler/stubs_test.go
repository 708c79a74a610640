package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bharaths07/sportsv1.1-sub000/internal/engine"
	"github.com/bharaths07/sportsv1.1-sub000/internal/handler"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
	"github.com/bharaths07/sportsv1.1-sub000/internal/stats"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

// stubMatchService records the last call and returns canned results.
type stubMatchService struct {
	res  service.Result
	err  error
	m    model.Match
	page repository.PageResult[model.Match]

	lastCall  string
	lastID    string
	lastUser  model.User
	create    service.CreateMatchInput
	start     service.StartInput
	score     engine.ScoreInput
	batting   service.BattingTeamInput
	scorerID  string
	lastPage  repository.Page
	feedLimit int
	feed      []model.FeedItem
	achieved  []model.Achievement
	certified []model.Certificate
}

func (s *stubMatchService) record(ctx context.Context, call, id string) {
	s.lastCall, s.lastID = call, id
	s.lastUser, _ = service.ContextIdentity{}.CurrentUser(ctx)
}

func (s *stubMatchService) CreateMatch(ctx context.Context, in service.CreateMatchInput) (model.Match, error) {
	s.record(ctx, "create", "")
	s.create = in
	return s.m, s.err
}

func (s *stubMatchService) GetMatch(ctx context.Context, id string) (model.Match, error) {
	s.record(ctx, "get", id)
	return s.m, s.err
}

func (s *stubMatchService) ListMatches(ctx context.Context, p repository.Page) (repository.PageResult[model.Match], error) {
	s.record(ctx, "list", "")
	s.lastPage = p
	return s.page, s.err
}

func (s *stubMatchService) Start(ctx context.Context, id string, in service.StartInput) (service.Result, error) {
	s.record(ctx, "start", id)
	s.start = in
	return s.res, s.err
}

func (s *stubMatchService) Score(ctx context.Context, id string, in engine.ScoreInput) (service.Result, error) {
	s.record(ctx, "score", id)
	s.score = in
	return s.res, s.err
}

func (s *stubMatchService) End(ctx context.Context, id string) (service.Result, error) {
	s.record(ctx, "end", id)
	return s.res, s.err
}

func (s *stubMatchService) Cancel(ctx context.Context, id string) (service.Result, error) {
	s.record(ctx, "cancel", id)
	return s.res, s.err
}

func (s *stubMatchService) Lock(ctx context.Context, id string) (service.Result, error) {
	s.record(ctx, "lock", id)
	return s.res, s.err
}

func (s *stubMatchService) SetBattingTeam(ctx context.Context, id string, in service.BattingTeamInput) (service.Result, error) {
	s.record(ctx, "batting", id)
	s.batting = in
	return s.res, s.err
}

func (s *stubMatchService) AssignScorer(ctx context.Context, id, userID string) (service.Result, error) {
	s.record(ctx, "assign", id)
	s.scorerID = userID
	return s.res, s.err
}

func (s *stubMatchService) RemoveScorer(ctx context.Context, id, userID string) (service.Result, error) {
	s.record(ctx, "remove", id)
	s.scorerID = userID
	return s.res, s.err
}

func (s *stubMatchService) ListAchievements(ctx context.Context, id string) ([]model.Achievement, error) {
	s.record(ctx, "achievements", id)
	return s.achieved, s.err
}

func (s *stubMatchService) ListCertificates(ctx context.Context, id string) ([]model.Certificate, error) {
	s.record(ctx, "certificates", id)
	return s.certified, s.err
}

func (s *stubMatchService) ListFeed(ctx context.Context, id string, limit int) ([]model.FeedItem, error) {
	s.record(ctx, "feed", id)
	s.feedLimit = limit
	return s.feed, s.err
}

type stubStatsService struct {
	res    stats.Result
	err    error
	filter stats.Filter
}

func (s *stubStatsService) Aggregate(_ context.Context, f stats.Filter) (stats.Result, error) {
	s.filter = f
	return s.res, s.err
}

type stubNotificationService struct {
	items  []model.Notification
	prefs  model.NotificationPreferences
	err    error
	readID string
	limit  int
}

func (s *stubNotificationService) List(_ context.Context, limit int) ([]model.Notification, error) {
	s.limit = limit
	return s.items, s.err
}

func (s *stubNotificationService) MarkRead(_ context.Context, id string) error {
	s.readID = id
	return s.err
}

func (s *stubNotificationService) Preferences(context.Context) (model.NotificationPreferences, error) {
	return s.prefs, s.err
}

func (s *stubNotificationService) UpdatePreferences(_ context.Context, p model.NotificationPreferences) error {
	s.prefs = p
	return s.err
}

func newRouter(probes map[string]handler.Pinger, svc handler.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, probes, svc, zerolog.Nop())
	return r
}
