package types

// RSVP response values.
const (
	ResponseAttending = "attending"
	ResponseMaybe     = "maybe"
	ResponseDeclined  = "declined"
)

// validResponses is the set of recognized RSVP responses.
var validResponses = map[string]bool{
	ResponseAttending: true,
	ResponseMaybe:     true,
	ResponseDeclined:  true,
}

// ValidResponse reports whether s is a recognized RSVP response.
func ValidResponse(s string) bool {
	return validResponses[s]
}

// RSVP is a member's declared response to an event, unique per
// (event, member) pair. A repeat RSVP for the same pair replaces the prior
// row, so the ID may change across re-submissions. EventID is not validated
// against existing events.
type RSVP struct {
	ID       int64  `json:"id"`
	EventID  int64  `json:"event_id"`
	MemberID int64  `json:"member_id"`
	Response string `json:"response"`
	RSVPAt   string `json:"rsvp_at"`
	Notes    string `json:"notes"`
}

// Attendee is an RSVP row joined with the responding member's identity,
// as returned by attendee listings. All response kinds are included.
type Attendee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Response string `json:"response"`
	RSVPAt   string `json:"rsvp_at"`
}
