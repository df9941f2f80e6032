package stats

import (
	"context"
	"sort"

	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Service computes read-only league analytics
type Service struct {
	store storage.Store
}

// New creates a new stats service
func New(store storage.Store) *Service {
	return &Service{store: store}
}

// Overview is a league-wide summary
type Overview struct {
	TotalClubs         int           `json:"total_clubs"`
	TotalPlayers       int           `json:"total_players"`
	TotalMatches       int           `json:"total_matches"`
	TotalTransfers     int           `json:"total_transfers"`
	TotalBudget        int64         `json:"total_budget"`
	TotalPlayerValue   int64         `json:"total_player_value"`
	RichestClub        *model.Club   `json:"richest_club,omitempty"`
	PoorestClub        *model.Club   `json:"poorest_club,omitempty"`
	MostValuablePlayer *model.Player `json:"most_valuable_player,omitempty"`
}

// ClubRanking is one club's standing by money
type ClubRanking struct {
	Club       model.Club `json:"club"`
	SquadSize  int        `json:"squad_size"`
	SquadValue int64      `json:"squad_value"`
	TotalWorth int64      `json:"total_worth"`
}

// AgeBand groups players into the league's age bands
type AgeBand struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// LeagueOverview returns league-wide totals and superlatives
func (s *Service) LeagueOverview(ctx context.Context) (Overview, error) {
	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return Overview{}, err
	}
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return Overview{}, err
	}
	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		return Overview{}, err
	}
	transfers, err := s.store.LoadTransfers(ctx)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{
		TotalClubs:     len(clubs),
		TotalPlayers:   len(players),
		TotalMatches:   len(matches),
		TotalTransfers: len(transfers),
	}

	for i, c := range clubs {
		overview.TotalBudget += c.Budget
		if overview.RichestClub == nil || c.Budget > overview.RichestClub.Budget {
			overview.RichestClub = &clubs[i]
		}
		if overview.PoorestClub == nil || c.Budget < overview.PoorestClub.Budget {
			overview.PoorestClub = &clubs[i]
		}
	}
	for i, p := range players {
		overview.TotalPlayerValue += p.Value
		if overview.MostValuablePlayer == nil || p.Value > overview.MostValuablePlayer.Value {
			overview.MostValuablePlayer = &players[i]
		}
	}
	return overview, nil
}

// TopPlayers returns the most valuable players, up to limit
func (s *Service) TopPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Value > players[j].Value
	})
	if limit > 0 && len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

// ClubRankings ranks clubs by total worth (budget plus squad value)
func (s *Service) ClubRankings(ctx context.Context) ([]ClubRanking, error) {
	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	rankings := make([]ClubRanking, 0, len(clubs))
	for _, c := range clubs {
		r := ClubRanking{Club: c}
		for _, p := range players {
			if p.ClubID != nil && *p.ClubID == c.ID {
				r.SquadSize++
				r.SquadValue += p.Value
			}
		}
		r.TotalWorth = c.Budget + r.SquadValue
		rankings = append(rankings, r)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalWorth > rankings[j].TotalWorth
	})
	return rankings, nil
}

// PositionBreakdown counts players per position
func (s *Service) PositionBreakdown(ctx context.Context) (map[model.Position]int, error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := map[model.Position]int{
		model.PositionGoalkeeper: 0,
		model.PositionDefender:   0,
		model.PositionMidfielder: 0,
		model.PositionAttacker:   0,
	}
	for _, p := range players {
		breakdown[p.Position]++
	}
	return breakdown, nil
}

// AgeAnalysis buckets players into youth (16-21), prime (22-29) and
// veteran (30+) bands
func (s *Service) AgeAnalysis(ctx context.Context) ([]AgeBand, error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	bands := []AgeBand{
		{Label: "16-21"},
		{Label: "22-29"},
		{Label: "30+"},
	}
	for _, p := range players {
		switch {
		case p.Age <= 21:
			bands[0].Count++
		case p.Age <= 29:
			bands[1].Count++
		default:
			bands[2].Count++
		}
	}
	return bands, nil
}
