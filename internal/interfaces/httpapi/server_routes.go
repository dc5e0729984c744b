package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /stats", handler.LeagueStats)
	mux.HandleFunc("GET /team-stats", handler.TeamStats)
	mux.HandleFunc("GET /player-stats", handler.PlayerStats)
	mux.HandleFunc("GET /today-matches", handler.TodayMatches)
}
