package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newClubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clubs",
		Short: "List all clubs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var clubs []Club
			if err := client.Get("/api/v1/clubs", &clubs); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(clubs)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one club",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("club id must be an integer: %q", args[0])
			}

			var club Club
			if err := client.Get(fmt.Sprintf("/api/v1/clubs/%d", id), &club); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(club)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "roster <id>",
		Short: "Show a club's roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("club id must be an integer: %q", args[0])
			}

			var roster []Player
			if err := client.Get(fmt.Sprintf("/api/v1/clubs/%d/roster", id), &roster); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(roster)
			return nil
		},
	})

	return cmd
}

func newPlayersCmd() *cobra.Command {
	var clubID int

	cmd := &cobra.Command{
		Use:   "players",
		Short: "List players, most valuable first",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if cmd.Flags().Changed("club") {
				path += "?club_id=" + strconv.Itoa(clubID)
			}

			var players []Player
			if err := client.Get(path, &players); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(players)
			return nil
		},
	}
	cmd.Flags().IntVar(&clubID, "club", 0, "Only players at this club")

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("player id must be an integer: %q", args[0])
			}

			var player Player
			if err := client.Get(fmt.Sprintf("/api/v1/players/%d", id), &player); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(player)
			return nil
		},
	})

	return cmd
}

func newMatchesCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List matches in kickoff order",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/matches"
			if status != "" {
				path += "?status=" + url.QueryEscape(status)
			}

			var matches []Match
			if err := client.Get(path, &matches); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(matches)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Only matches in this status (scheduled, live, finished, cancelled)")

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("match id must be an integer: %q", args[0])
			}

			var match Match
			if err := client.Get(fmt.Sprintf("/api/v1/matches/%d", id), &match); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(match)
			return nil
		},
	})

	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show league statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var stats StatsResult
			if err := client.Get("/api/v1/stats", &stats); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(stats)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rankings",
		Short: "Show clubs ranked by total worth",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rankings []Ranking
			if err := client.Get("/api/v1/stats/rankings", &rankings); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(rankings)
			return nil
		},
	})

	return cmd
}
