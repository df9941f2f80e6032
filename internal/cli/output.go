package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	case StatusResult:
		o.printStatus(v)
	case []Club:
		o.printClubs(v)
	case Club:
		o.printClubs([]Club{v})
	case []Player:
		o.printPlayers(v)
	case Player:
		o.printPlayers([]Player{v})
	case []Match:
		o.printMatches(v)
	case Match:
		o.printMatches([]Match{v})
	case StatsResult:
		o.printStats(v)
	case []Ranking:
		o.printRankings(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// StatusResult response type
type StatusResult struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Clubs     int    `json:"clubs"`
	Players   int    `json:"players"`
	Matches   int    `json:"matches"`
	Transfers int    `json:"transfers"`
}

// Club response type (matches API)
type Club struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Budget int64  `json:"budget"`
}

// Player response type
type Player struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Value         int64  `json:"value"`
	Position      string `json:"position"`
	Age           int    `json:"age"`
	ClubID        *int   `json:"club_id"`
	TransferCount int    `json:"transfer_count"`
}

// Match response type
type Match struct {
	ID            int       `json:"id"`
	Club1ID       int       `json:"club1_id"`
	Club2ID       int       `json:"club2_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
	ReminderSent  bool      `json:"reminder_sent"`
}

// StatsResult response type
type StatsResult struct {
	TotalClubs       int     `json:"total_clubs"`
	TotalPlayers     int     `json:"total_players"`
	TotalMatches     int     `json:"total_matches"`
	TotalTransfers   int     `json:"total_transfers"`
	TotalBudget      int64   `json:"total_budget"`
	TotalPlayerValue int64   `json:"total_player_value"`
	RichestClub      *Club   `json:"richest_club"`
	PoorestClub      *Club   `json:"poorest_club"`
	MostValuable     *Player `json:"most_valuable_player"`
}

// Ranking response type
type Ranking struct {
	Club       Club  `json:"club"`
	SquadSize  int   `json:"squad_size"`
	SquadValue int64 `json:"squad_value"`
	TotalWorth int64 `json:"total_worth"`
}

func (o *Output) printStatus(s StatusResult) {
	fmt.Printf("Service:   %s (%s)\n", s.Service, s.Status)
	fmt.Printf("Clubs:     %d\n", s.Clubs)
	fmt.Printf("Players:   %d\n", s.Players)
	fmt.Printf("Matches:   %d\n", s.Matches)
	fmt.Printf("Transfers: %d\n", s.Transfers)
}

func (o *Output) printClubs(clubs []Club) {
	if len(clubs) == 0 {
		fmt.Println("No clubs")
		return
	}
	fmt.Printf("%-5s %-25s %12s\n", "ID", "NAME", "BUDGET")
	for _, c := range clubs {
		fmt.Printf("%-5d %-25s %12d\n", c.ID, c.Name, c.Budget)
	}
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	fmt.Printf("%-5s %-25s %-4s %4s %12s %-10s\n", "ID", "NAME", "POS", "AGE", "VALUE", "CLUB")
	for _, p := range players {
		club := "free agent"
		if p.ClubID != nil {
			club = fmt.Sprintf("%d", *p.ClubID)
		}
		fmt.Printf("%-5d %-25s %-4s %4d %12d %-10s\n", p.ID, p.Name, p.Position, p.Age, p.Value, club)
	}
}

func (o *Output) printMatches(matches []Match) {
	if len(matches) == 0 {
		fmt.Println("No matches")
		return
	}
	fmt.Printf("%-5s %-8s %-8s %-20s %-10s %s\n", "ID", "CLUB1", "CLUB2", "KICKOFF", "STATUS", "REMINDER")
	for _, m := range matches {
		reminder := "pending"
		if m.ReminderSent {
			reminder = "sent"
		}
		fmt.Printf("%-5d %-8d %-8d %-20s %-10s %s\n",
			m.ID, m.Club1ID, m.Club2ID, m.ScheduledTime.Format(time.RFC3339), m.Status, reminder)
	}
}

func (o *Output) printStats(s StatsResult) {
	fmt.Printf("Clubs:        %d (total budget %d)\n", s.TotalClubs, s.TotalBudget)
	fmt.Printf("Players:      %d (total value %d)\n", s.TotalPlayers, s.TotalPlayerValue)
	fmt.Printf("Matches:      %d\n", s.TotalMatches)
	fmt.Printf("Transfers:    %d\n", s.TotalTransfers)
	if s.RichestClub != nil {
		fmt.Printf("Richest club: %s (%d)\n", s.RichestClub.Name, s.RichestClub.Budget)
	}
	if s.MostValuable != nil {
		fmt.Printf("Top player:   %s (%d)\n", s.MostValuable.Name, s.MostValuable.Value)
	}
}

func (o *Output) printRankings(rankings []Ranking) {
	if len(rankings) == 0 {
		fmt.Println("No clubs")
		return
	}
	fmt.Printf("%-5s %-25s %6s %12s %12s\n", "RANK", "CLUB", "SQUAD", "SQUAD VALUE", "TOTAL WORTH")
	for i, r := range rankings {
		fmt.Printf("%-5d %-25s %6d %12d %12d\n", i+1, r.Club.Name, r.SquadSize, r.SquadValue, r.TotalWorth)
	}
}
