package httpapi

import (
	"net/http"

	"github.com/riskibarqy/match-analytics/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.ListMatches(ctx)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err)
		return
	}

	items := make([]matchSummaryDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchSummaryToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	overview, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchOverviewToDTO(overview))
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	matchID := r.PathValue("matchID")
	values := r.URL.Query()
	minute, err := queryInt(values, "minute", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	half, err := queryInt(values, "half", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q := eventWindowQuery{
		Team:   queryString(values, "team", ""),
		Kind:   queryString(values, "kind", usecase.EventKindShots),
		Minute: minute,
		Half:   half,
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.matchService.EventsInWindow(ctx, usecase.EventWindowInput{
		MatchID: matchID,
		Team:    q.Team,
		Kind:    q.Kind,
		Minute:  q.Minute,
		Half:    q.Half,
	})
	if err != nil {
		h.fail(ctx, w, "list match events failed", err, "match_id", matchID, "team", q.Team, "kind", q.Kind)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, windowedEventsToDTO(events))
}

func (h *Handler) ListPlayerEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerEvents")
	defer span.End()

	matchID := r.PathValue("matchID")
	values := r.URL.Query()
	minute, err := queryInt(values, "minute", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q := playerWindowQuery{
		Players: values["player"],
		Kind:    queryString(values, "kind", usecase.EventKindShots),
		Minute:  minute,
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.matchService.EventsByPlayers(ctx, usecase.PlayerWindowInput{
		MatchID: matchID,
		Players: q.Players,
		Kind:    q.Kind,
		Minute:  q.Minute,
	})
	if err != nil {
		h.fail(ctx, w, "list player events failed", err, "match_id", matchID, "players", q.Players)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, windowedEventsToDTO(events))
}

func (h *Handler) GetTeamLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamLogo")
	defer span.End()

	team := r.PathValue("team")
	data, err := h.matchService.TeamLogo(ctx, team)
	if err != nil {
		h.fail(ctx, w, "get team logo failed", err, "team", team)
		return
	}

	writeImage(ctx, w, "image/jpeg", data)
}

func (h *Handler) ListPlayerLocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerLocations")
	defer span.End()

	player := r.PathValue("player")
	values := r.URL.Query()
	q := locationsQuery{
		Kind:    queryString(values, "kind", usecase.EventKindShots),
		MatchID: values.Get("match"),
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	points, err := h.matchService.PlayerLocations(ctx, usecase.PlayerLocationsInput{
		Player:  player,
		Kind:    q.Kind,
		MatchID: q.MatchID,
	})
	if err != nil {
		h.fail(ctx, w, "list player locations failed", err, "player", player, "kind", q.Kind, "match_id", q.MatchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pitchPointsToDTO(points))
}
