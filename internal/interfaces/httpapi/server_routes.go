package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/events", handler.ListMatchEvents)
	mux.HandleFunc("GET /v1/matches/{matchID}/player-events", handler.ListPlayerEvents)
	mux.HandleFunc("GET /v1/teams/{team}/logo", handler.GetTeamLogo)
}

func registerStandingsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matchdays", handler.ListMatchdays)
	mux.HandleFunc("GET /v1/matchdays/{matchday}/results", handler.ListMatchdayResults)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{team}/season", handler.GetTeamSeason)
	mux.HandleFunc("GET /v1/teams/{team}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/players/top-scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/players/top-performers", handler.ListTopPerformers)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/{player}/evolution", handler.GetPlayerEvolution)
	mux.HandleFunc("GET /v1/players/{player}/locations", handler.ListPlayerLocations)
	mux.HandleFunc("GET /v1/players/{player}/profile", handler.GetPlayerProfile)
	mux.HandleFunc("GET /v1/goalkeepers", handler.ListGoalkeepers)
	mux.HandleFunc("GET /v1/goalkeepers/top", handler.ListTopGoalkeepers)
	mux.HandleFunc("GET /v1/goalkeepers/{player}", handler.GetGoalkeeperPerformance)
}
