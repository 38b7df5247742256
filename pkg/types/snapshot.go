package types

// Stats summarizes the store contents: active member count, total event count
// (any status), and RSVPs whose response is exactly "attending".
type Stats struct {
	ActiveMembers  int64  `json:"active_members"`
	TotalEvents    int64  `json:"total_events"`
	ConfirmedRSVPs int64  `json:"confirmed_rsvps"`
	DBPath         string `json:"db_path"`
}

// Snapshot is the full contents of all three tables plus the export
// timestamp. Field names mirror the entity attributes so the serialized
// form is stable across exports.
type Snapshot struct {
	Members    []Member `json:"members"`
	Events     []Event  `json:"events"`
	RSVPs      []RSVP   `json:"rsvps"`
	ExportedAt string   `json:"exported_at"`
}
