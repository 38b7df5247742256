// Status command reports high-level store statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show member, event, and RSVP counts",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.Stats()
	if err != nil {
		return fmt.Errorf("gather stats: %w", err)
	}

	if flagJSON {
		return printJSON(stats)
	}

	r := newRenderer(os.Stdout)
	fmt.Println(r.heading("Community Organizer Status"))
	rows := []struct {
		key   string
		value string
	}{
		{"active_members", fmt.Sprintf("%d", stats.ActiveMembers)},
		{"total_events", fmt.Sprintf("%d", stats.TotalEvents)},
		{"confirmed_rsvps", fmt.Sprintf("%d", stats.ConfirmedRSVPs)},
		{"db_path", stats.DBPath},
	}
	for _, row := range rows {
		fmt.Printf("  %s: %s\n", r.paint(ansiCyan, row.key), r.paint(ansiGreen, row.value))
	}
	return nil
}
