package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/leagueops/leaguekeeper/internal/api/apierr"
	"github.com/leagueops/leaguekeeper/internal/api/response"
	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/services/club"
	"github.com/leagueops/leaguekeeper/internal/services/match"
	"github.com/leagueops/leaguekeeper/internal/services/player"
	"github.com/leagueops/leaguekeeper/internal/services/stats"
)

// LeagueHandler serves the read-only league endpoints
type LeagueHandler struct {
	clubs   *club.Service
	players *player.Service
	matches *match.Service
	stats   *stats.Service
}

// NewLeagueHandler creates a LeagueHandler
func NewLeagueHandler(clubs *club.Service, players *player.Service, matches *match.Service, statsService *stats.Service) *LeagueHandler {
	return &LeagueHandler{
		clubs:   clubs,
		players: players,
		matches: matches,
		stats:   statsService,
	}
}

// StatusResponse is the /status payload
type StatusResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Clubs     int    `json:"clubs"`
	Players   int    `json:"players"`
	Matches   int    `json:"matches"`
	Transfers int    `json:"transfers"`
}

// Status reports service identity and record counts
func (h *LeagueHandler) Status(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.LeagueOverview(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, StatusResponse{
		Service:   "leaguekeeper",
		Status:    "ok",
		Clubs:     overview.TotalClubs,
		Players:   overview.TotalPlayers,
		Matches:   overview.TotalMatches,
		Transfers: overview.TotalTransfers,
	})
}

// ListClubs returns all clubs
func (h *LeagueHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubs.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, clubs)
}

// GetClub returns one club by ID
func (h *LeagueHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	c, err := h.clubs.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

// GetClubRoster returns the players at one club
func (h *LeagueHandler) GetClubRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	roster, err := h.clubs.Roster(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, roster)
}

// ListPlayers returns all players, optionally filtered by club_id
func (h *LeagueHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	var clubID *int
	if raw := r.URL.Query().Get("club_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			apierr.WriteError(w, apierr.BadRequest("club_id must be an integer"))
			return
		}
		clubID = &id
	}

	players, err := h.players.List(r.Context(), clubID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, players)
}

// GetPlayer returns one player by ID
func (h *LeagueHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	p, err := h.players.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// ListMatches returns matches, optionally filtered by status
func (h *LeagueHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	status := model.MatchStatus("")
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := model.ParseMatchStatus(raw)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		status = parsed
	}

	matches, err := h.matches.List(r.Context(), status)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, matches)
}

// GetMatch returns one match by ID
func (h *LeagueHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	m, err := h.matches.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, m)
}

// GetStats returns the league overview
func (h *LeagueHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.LeagueOverview(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, overview)
}

// GetRankings returns clubs ranked by total worth
func (h *LeagueHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.stats.ClubRankings(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, rankings)
}

func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierr.BadRequest("id must be an integer")
	}
	return id, nil
}
