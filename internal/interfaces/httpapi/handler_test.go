package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	"github.com/riskibarqy/match-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-analytics/internal/platform/logging"
	"github.com/riskibarqy/match-analytics/internal/usecase"
)

const testMatchID = "13.08.11 Arsenal v Chelsea"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := memory.NewMatchRepository(map[string]memory.MatchData{
		testMatchID: {
			Events: []match.Event{
				{Name: "Pass", Half: match.HalfFirst, Time: 12, Player: "Arteta", Team: "Arsenal"},
				{Name: match.EventGoal, Half: match.HalfFirst, Time: 600, Player: "RVP", Team: "Arsenal", X: 45},
				{Name: "Shot", Half: match.HalfSecond, Time: 90, Player: "Lampard", Team: "Chelsea", X: -30},
			},
			Players: []match.PlayerRecord{
				{Name: "RVP", Team: "Arsenal", Result: match.ResultWin, Goals: 1, XG: 0.9, Minutes: 90, YellowCards: 1, Counters: match.Counters{Shot: 3, Touch: 40}},
				{Name: "Cech", Team: "Chelsea", Result: match.ResultLoss, Minutes: 90, Goalkeeping: match.GoalkeeperActions{Save: 4}},
			},
		},
	}, map[string][]byte{"Arsenal": {0xff, 0xd8}})

	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewMatchService(repo, 2, logger),
		usecase.NewStandingsService(repo, usecase.StandingsConfig{TotalMatchdays: 2, WindowDays: 3, Workers: 2}, logger),
		usecase.NewPlayerSeasonService(repo, 2, logger),
		logger,
	)
	return NewRouter(handler, logger, "match-analytics-test", []string{"*"})
}

type testEnvelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data"`
	Error      map[string]any `json:"error"`
}

func doGet(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body testEnvelope
	if rec.Header().Get("Content-Type") == "application/json" {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
	}
	return rec, body
}

func matchPath(suffix string) string {
	return "/v1/matches/" + url.PathEscape(testMatchID) + suffix
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	rec, body := doGet(t, newTestRouter(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body.APIVersion != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %s", body.APIVersion)
	}
}

func TestRouter_GetMatch(t *testing.T) {
	t.Parallel()

	rec, body := doGet(t, newTestRouter(t), matchPath(""))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, ok := body.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", body.Data)
	}
	if data["home"] != "Arsenal" || data["date"] != "2011-08-13" {
		t.Fatalf("unexpected match overview: %v", data)
	}
	stats, _ := data["team_stats"].([]any)
	if len(stats) != 2 {
		t.Fatalf("unexpected team stats count: got=%d want=2", len(stats))
	}
}

func TestRouter_ListMatchEvents(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doGet(t, router, matchPath("/events?team=Arsenal&kind=goals&half=0"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	events, _ := body.Data.([]any)
	if len(events) != 1 {
		t.Fatalf("unexpected event count: got=%d want=1", len(events))
	}

	rec, body = doGet(t, router, matchPath("/events?team=Arsenal&kind=goals&half=0&minute=200"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for cutoff beyond data, got %d: %s", rec.Code, rec.Body.String())
	}
	events, _ = body.Data.([]any)
	if len(events) != 1 {
		t.Fatalf("unexpected event count for cutoff beyond data: got=%d want=1", len(events))
	}

	rec, _ = doGet(t, router, matchPath("/events?team=Arsenal&kind=shots&minute=-1"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for negative minute, got %d", rec.Code)
	}

	rec, _ = doGet(t, router, matchPath("/events?team=Arsenal&kind=tackles"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown kind, got %d", rec.Code)
	}

	rec, _ = doGet(t, router, matchPath("/events?team=Arsenal&kind=shots&half=3"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad half, got %d", rec.Code)
	}
}

func TestRouter_ListPlayerEvents(t *testing.T) {
	t.Parallel()

	rec, body := doGet(t, newTestRouter(t), matchPath("/player-events?player=RVP&player=Arteta&kind=passes"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	events, _ := body.Data.([]any)
	if len(events) != 1 {
		t.Fatalf("unexpected event count: got=%d want=1", len(events))
	}
}

func TestRouter_ListPlayerEvents_CutoffBeyondData(t *testing.T) {
	t.Parallel()

	rec, body := doGet(t, newTestRouter(t), matchPath("/player-events?player=RVP&player=Lampard&kind=shots&minute=500"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	events, _ := body.Data.([]any)
	if len(events) != 1 {
		t.Fatalf("unexpected event count: got=%d want=1", len(events))
	}
}

func TestRouter_PlayerProfile(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doGet(t, router, "/v1/players/RVP/profile?team=Arsenal")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, ok := body.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", body.Data)
	}
	if data["yellow_cards"] != float64(1) || data["red_cards"] != float64(0) {
		t.Fatalf("unexpected cards: %v", data)
	}
	if data["goals"] != float64(1) || data["shot"] != float64(3) || data["touch"] != float64(40) {
		t.Fatalf("unexpected radar counters: %v", data)
	}

	rec, _ = doGet(t, router, "/v1/players/RVP/profile")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without team, got %d", rec.Code)
	}
	rec, _ = doGet(t, router, "/v1/players/RVP/profile?team=Chelsea")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for player outside team, got %d", rec.Code)
	}
}

func TestRouter_UnknownMatch(t *testing.T) {
	t.Parallel()

	rec, body := doGet(t, newTestRouter(t), "/v1/matches/"+url.PathEscape("01.01.12 Nobody v Anybody"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if body.Error["status"] != "NOT_FOUND" {
		t.Fatalf("unexpected error status: %v", body.Error["status"])
	}
}

func TestRouter_TeamLogo(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, _ := doGet(t, router, "/v1/teams/Arsenal/logo")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Fatalf("unexpected content type: %q", got)
	}

	rec, _ = doGet(t, router, "/v1/teams/Chelsea/logo")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing logo, got %d", rec.Code)
	}
}

func TestRouter_Standings(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doGet(t, router, "/v1/standings?matchday=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rows, _ := body.Data.([]any)
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(rows))
	}
	leader, _ := rows[0].(map[string]any)
	if leader["team"] != "Arsenal" || leader["points"] != float64(3) {
		t.Fatalf("unexpected leader: %v", leader)
	}

	rec, _ = doGet(t, router, "/v1/standings")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without matchday, got %d", rec.Code)
	}
	rec, _ = doGet(t, router, "/v1/standings?matchday=3")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 past the last matchday, got %d", rec.Code)
	}

	rec, body = doGet(t, router, "/v1/matchdays/1/results")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	results, _ := body.Data.([]any)
	if len(results) != 1 {
		t.Fatalf("unexpected result count: got=%d want=1", len(results))
	}
	result, _ := results[0].(map[string]any)
	if result["home_goals"] != float64(1) || result["away_goals"] != float64(0) {
		t.Fatalf("unexpected score: %v", result)
	}
}

func TestRouter_SeasonRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	cases := []struct {
		target string
		want   int
	}{
		{target: "/v1/players/top-scorers?limit=5", want: http.StatusOK},
		{target: "/v1/players/top-scorers?limit=0", want: http.StatusBadRequest},
		{target: "/v1/players/top-scorers?limit=abc", want: http.StatusBadRequest},
		{target: "/v1/players/top-performers", want: http.StatusOK},
		{target: "/v1/players/search?q=rvp", want: http.StatusOK},
		{target: "/v1/players/search", want: http.StatusBadRequest},
		{target: "/v1/players/RVP/evolution?team=Arsenal&aggregation=month", want: http.StatusOK},
		{target: "/v1/players/RVP/evolution?team=Arsenal&aggregation=week", want: http.StatusBadRequest},
		{target: "/v1/players/RVP/locations?kind=touches", want: http.StatusOK},
		{target: "/v1/teams/Arsenal/season", want: http.StatusOK},
		{target: "/v1/teams/Everton/season", want: http.StatusNotFound},
		{target: "/v1/teams/Chelsea/players", want: http.StatusOK},
		{target: "/v1/goalkeepers", want: http.StatusOK},
		{target: "/v1/goalkeepers/top?limit=3", want: http.StatusOK},
		{target: "/v1/goalkeepers/Cech", want: http.StatusOK},
		{target: "/v1/goalkeepers/RVP", want: http.StatusNotFound},
	}
	for _, tc := range cases {
		rec, _ := doGet(t, router, tc.target)
		if rec.Code != tc.want {
			t.Fatalf("GET %s: got=%d want=%d body=%s", tc.target, rec.Code, tc.want, rec.Body.String())
		}
	}
}
