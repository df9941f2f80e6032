package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/leagueops/leaguekeeper/internal/api/apierr"
	"github.com/leagueops/leaguekeeper/internal/api/handler"
	"github.com/leagueops/leaguekeeper/internal/middleware"
	"github.com/leagueops/leaguekeeper/internal/services/club"
	"github.com/leagueops/leaguekeeper/internal/services/match"
	"github.com/leagueops/leaguekeeper/internal/services/player"
	"github.com/leagueops/leaguekeeper/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	ClubService   *club.Service
	PlayerService *player.Service
	MatchService  *match.Service
	StatsService  *stats.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	league := handler.NewLeagueHandler(cfg.ClubService, cfg.PlayerService, cfg.MatchService, cfg.StatsService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, panicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/status", league.Status).Methods(http.MethodGet)

	api.HandleFunc("/clubs", league.ListClubs).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}", league.GetClub).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}/roster", league.GetClubRoster).Methods(http.MethodGet)

	api.HandleFunc("/players", league.ListPlayers).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", league.GetPlayer).Methods(http.MethodGet)

	api.HandleFunc("/matches", league.ListMatches).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}", league.GetMatch).Methods(http.MethodGet)

	api.HandleFunc("/stats", league.GetStats).Methods(http.MethodGet)
	api.HandleFunc("/stats/rankings", league.GetRankings).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, errors.New("panic"))
}
