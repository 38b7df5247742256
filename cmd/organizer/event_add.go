// Add-event command creates a community event.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-community-organizer/internal/store"
	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

var (
	addEventLocation    string
	addEventCapacity    int64
	addEventOrganizer   string
	addEventDescription string
)

var addEventCmd = &cobra.Command{
	Use:   "add-event TITLE DATE",
	Short: "Create a community event",
	Long: `Add-event creates an event scheduled for DATE (ISO format by
convention, e.g. 2025-06-01; stored as given). The organizer email, when
supplied, is resolved to an existing member; an unknown email leaves the
event without an organizer.

Example:
  organizer add-event "Summer Meetup" 2025-06-01
  organizer add-event "Workshop" 2025-07-15 --location "Main Hall" --capacity 30 --organizer ada@example.com`,
	Args: cobra.ExactArgs(2),
	RunE: runAddEvent,
}

func init() {
	addEventCmd.Flags().StringVar(&addEventLocation, "location", types.DefaultLocation, "event location")
	addEventCmd.Flags().Int64Var(&addEventCapacity, "capacity", types.DefaultCapacity, "advisory capacity")
	addEventCmd.Flags().StringVar(&addEventOrganizer, "organizer", "", "organizer member email")
	addEventCmd.Flags().StringVar(&addEventDescription, "description", "", "event description")
}

func runAddEvent(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := s.CreateEvent(store.EventParams{
		Title:          args[0],
		EventDate:      args[1],
		Location:       addEventLocation,
		Description:    addEventDescription,
		Capacity:       addEventCapacity,
		OrganizerEmail: addEventOrganizer,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(e)
	}

	r := newRenderer(os.Stdout)
	fmt.Printf("%s Event %s created (id=%d)\n", r.check(), r.paint(ansiBold, e.Title), e.ID)
	return nil
}
