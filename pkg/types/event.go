package types

// Event status values. Statuses carry no behavior; they are free-form strings
// used for filtering and display coloring only, with no automated transitions.
const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Defaults applied on event creation when the caller leaves a field unset.
const (
	DefaultLocation = "TBD"
	DefaultCapacity = 50
)

// Event is a scheduled community gathering. The event date is an ISO-formatted
// string by convention but is stored as given; capacity is advisory and never
// checked against RSVP counts. OrganizerID is a weak reference to a member,
// resolved from an email at creation time and nil when unresolved.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	EventDate   string `json:"event_date"`
	Capacity    int64  `json:"capacity"`
	OrganizerID *int64 `json:"organizer_id"`
	CreatedAt   string `json:"created_at"`
	Status      string `json:"status"`
}
