package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharaths07/sportsv1.1-sub000/internal/handler"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
	"github.com/bharaths07/sportsv1.1-sub000/internal/stats"
)

func TestStatsHandler_Aggregate(t *testing.T) {
	stub := &stubStatsService{res: stats.Result{
		Batting: []model.BattingStats{{PlayerID: "p1", Runs: 120}},
	}}
	r := newRouter(nil, handler.Services{Stats: stub})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/stats?sport_id=s1&tournament_id=cup&range=last_30_days", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, stats.Filter{SportID: "s1", TournamentID: "cup", Range: stats.RangeLast30Days}, stub.filter)

	var got stats.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Batting, 1)
	assert.Equal(t, 120, got.Batting[0].Runs)
}

func TestStatsHandler_InvalidFilter(t *testing.T) {
	stub := &stubStatsService{err: service.NewInvalidInputError([]service.FieldError{{Field: "range", Message: "unknown range"}})}
	r := newRouter(nil, handler.Services{Stats: stub})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/stats?sport_id=s1&range=forever", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"range"`)
}
