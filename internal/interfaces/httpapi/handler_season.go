package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/match-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/match-analytics/internal/usecase"
)

func (h *Handler) ListMatchdays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchdays")
	defer span.End()

	matchdays, err := h.standingsService.Matchdays(ctx)
	if err != nil {
		h.fail(ctx, w, "list matchdays failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchdaysToDTO(matchdays))
}

func (h *Handler) ListMatchdayResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchdayResults")
	defer span.End()

	matchday, err := pathInt(r, "matchday")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.standingsService.MatchdayResults(ctx, matchday)
	if err != nil {
		h.fail(ctx, w, "list matchday results failed", err, "matchday", matchday)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultsToDTO(results))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	matchday, err := queryInt(r.URL.Query(), "matchday", -1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q := standingsQuery{Matchday: matchday}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingsService.StandingsAfter(ctx, q.Matchday)
	if err != nil {
		h.fail(ctx, w, "list standings failed", err, "matchday", q.Matchday)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) GetTeamSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSeason")
	defer span.End()

	team := r.PathValue("team")
	stats, err := h.playerSeasonService.StatsPerTeam(ctx, team)
	if err != nil {
		h.fail(ctx, w, "get team season failed", err, "team", team)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamSeasonToDTO(stats))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	team := r.PathValue("team")
	names, err := h.playerSeasonService.PlayerNames(ctx, team)
	if err != nil {
		h.fail(ctx, w, "list team players failed", err, "team", team)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, names)
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit, err := h.parseLimit(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.playerSeasonService.TopScorersYearly(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "list top scorers failed", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonTotalsToDTO(rows))
}

func (h *Handler) ListTopPerformers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopPerformers")
	defer span.End()

	limit, err := h.parseLimit(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	performers, err := h.playerSeasonService.TopPerformers(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "list top performers failed", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, performersToDTO(performers))
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	values := r.URL.Query()
	limit, err := queryInt(values, "limit", defaultLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q := searchQuery{Query: queryString(values, "q", ""), Limit: limit}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	hits, err := h.playerSeasonService.SearchPlayers(ctx, q.Query, q.Limit)
	if err != nil {
		h.fail(ctx, w, "search players failed", err, "query", q.Query)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerMatchesToDTO(hits))
}

func (h *Handler) GetPlayerEvolution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerEvolution")
	defer span.End()

	player := r.PathValue("player")
	values := r.URL.Query()
	q := evolutionQuery{
		Team:        queryString(values, "team", ""),
		Aggregation: queryString(values, "aggregation", string(playerstats.AggregateMatch)),
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.playerSeasonService.EvolutionByMonthMatch(ctx, player, q.Team, q.Aggregation)
	if err != nil {
		h.fail(ctx, w, "get player evolution failed", err, "player", player, "team", q.Team, "aggregation", q.Aggregation)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, evolutionToDTO(rows, q.Aggregation))
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	player := r.PathValue("player")
	q := profileQuery{Team: queryString(r.URL.Query(), "team", "")}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.playerSeasonService.PlayerProfile(ctx, player, q.Team)
	if err != nil {
		h.fail(ctx, w, "get player profile failed", err, "player", player, "team", q.Team)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(profile))
}

func (h *Handler) ListGoalkeepers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalkeepers")
	defer span.End()

	names, err := h.playerSeasonService.GoalkeeperNames(ctx)
	if err != nil {
		h.fail(ctx, w, "list goalkeepers failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, names)
}

func (h *Handler) ListTopGoalkeepers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopGoalkeepers")
	defer span.End()

	limit, err := h.parseLimit(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.playerSeasonService.TopGoalkeepers(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "list top goalkeepers failed", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalkeeperRanksToDTO(rows))
}

func (h *Handler) GetGoalkeeperPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalkeeperPerformance")
	defer span.End()

	player := r.PathValue("player")
	totals, found, err := h.playerSeasonService.GoalkeeperPerformance(ctx, player)
	if err != nil {
		h.fail(ctx, w, "get goalkeeper performance failed", err, "player", player)
		return
	}
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: no goalkeeper actions for player=%s", usecase.ErrNotFound, player))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalkeeperActionsToDTO(player, totals))
}
