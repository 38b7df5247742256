// List command shows events or members.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

var listStatus string

var listCmd = &cobra.Command{
	Use:   "list [events|members]",
	Short: "List events or members",
	Long: `List shows all events (the default) or all active members.

Events are ordered by event date; --status filters events to an exact
status match.

Example:
  organizer list
  organizer list events --status upcoming
  organizer list members`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"events", "members"},
	RunE:      runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter events by status (upcoming, active, cancelled, completed)")
}

func runList(cmd *cobra.Command, args []string) error {
	target := "events"
	if len(args) == 1 {
		target = args[0]
	}

	switch target {
	case "events":
		return listEvents()
	case "members":
		return listMembers()
	default:
		return fmt.Errorf("unknown list target %q (valid: events, members)", target)
	}
}

func listEvents() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	events, err := s.ListEvents(listStatus)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	if flagJSON {
		if events == nil {
			events = []types.Event{}
		}
		return printJSON(events)
	}

	label := "all"
	if listStatus != "" {
		label = "status=" + listStatus
	}

	r := newRenderer(os.Stdout)
	fmt.Println(r.heading(fmt.Sprintf("Events (%d) - %s", len(events), label)))
	if len(events) == 0 {
		fmt.Println(r.none())
		return nil
	}
	for _, e := range events {
		fmt.Println(r.event(e))
	}
	return nil
}

func listMembers() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	members, err := s.ListMembers()
	if err != nil {
		return fmt.Errorf("list members: %w", err)
	}

	if flagJSON {
		if members == nil {
			members = []types.Member{}
		}
		return printJSON(members)
	}

	r := newRenderer(os.Stdout)
	fmt.Println(r.heading(fmt.Sprintf("Members (%d)", len(members))))
	if len(members) == 0 {
		fmt.Println(r.none())
		return nil
	}
	for _, m := range members {
		fmt.Println(r.member(m))
	}
	return nil
}
