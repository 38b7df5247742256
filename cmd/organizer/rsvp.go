// RSVP command records a member's response to an event.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

var (
	rsvpResponse string
	rsvpNotes    string
)

var rsvpCmd = &cobra.Command{
	Use:   "rsvp EVENT_ID EMAIL",
	Short: "RSVP to an event",
	Long: `RSVP records a member's response to an event. The email must belong
to a registered member. A repeat RSVP for the same event replaces the
previous response.

Example:
  organizer rsvp 3 ada@example.com
  organizer rsvp 3 grace@example.com --response maybe --notes "depends on travel"`,
	Args: cobra.ExactArgs(2),
	RunE: runRSVP,
}

func init() {
	rsvpCmd.Flags().StringVar(&rsvpResponse, "response", types.ResponseAttending, "response (attending, maybe, declined)")
	rsvpCmd.Flags().StringVar(&rsvpNotes, "notes", "", "free-form notes")
}

func runRSVP(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	if !types.ValidResponse(rsvpResponse) {
		return fmt.Errorf("invalid response %q (valid: attending, maybe, declined)", rsvpResponse)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.RecordRSVP(eventID, args[1], rsvpResponse, rsvpNotes)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(rec)
	}

	r := newRenderer(os.Stdout)
	fmt.Printf("%s RSVP recorded (id=%d) response=%s\n", r.check(), rec.ID, rec.Response)
	return nil
}
