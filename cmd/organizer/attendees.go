// Attendees command lists RSVPs for an event with member identities.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

var attendeesCmd = &cobra.Command{
	Use:   "attendees EVENT_ID",
	Short: "List RSVPs for an event",
	Long: `Attendees lists every RSVP for the given event in the order the
responses arrived, including "maybe" and "declined" alongside "attending".

Example:
  organizer attendees 3`,
	Args: cobra.ExactArgs(1),
	RunE: runAttendees,
}

func runAttendees(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	attendees, err := s.Attendees(eventID)
	if err != nil {
		return fmt.Errorf("list attendees: %w", err)
	}

	if flagJSON {
		if attendees == nil {
			attendees = []types.Attendee{}
		}
		return printJSON(attendees)
	}

	r := newRenderer(os.Stdout)
	fmt.Println(r.heading(fmt.Sprintf("Attendees for event %d (%d)", eventID, len(attendees))))
	for _, a := range attendees {
		fmt.Println(r.attendee(a))
	}
	return nil
}
