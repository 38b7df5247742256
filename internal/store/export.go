package store

import (
	"fmt"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

// Export returns the full contents of all three tables plus an export
// timestamp. Inactive members and every RSVP response kind are included.
func (s *Store) Export() (*types.Snapshot, error) {
	snap := &types.Snapshot{ExportedAt: now()}

	memberRows, err := s.db.Query(
		"SELECT id, name, email, role, joined_at, active FROM members",
	)
	if err != nil {
		return nil, fmt.Errorf("querying members: %w", err)
	}
	defer memberRows.Close()
	if snap.Members, err = scanMembers(memberRows); err != nil {
		return nil, err
	}

	eventRows, err := s.db.Query(
		"SELECT id, title, description, location, event_date, capacity, organizer_id, created_at, status FROM events",
	)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer eventRows.Close()
	if snap.Events, err = scanEvents(eventRows); err != nil {
		return nil, err
	}

	rsvpRows, err := s.db.Query(
		"SELECT id, event_id, member_id, response, rsvp_at, notes FROM rsvps",
	)
	if err != nil {
		return nil, fmt.Errorf("querying rsvps: %w", err)
	}
	defer rsvpRows.Close()
	for rsvpRows.Next() {
		var r types.RSVP
		if err := rsvpRows.Scan(&r.ID, &r.EventID, &r.MemberID, &r.Response, &r.RSVPAt, &r.Notes); err != nil {
			return nil, fmt.Errorf("scanning rsvp: %w", err)
		}
		snap.RSVPs = append(snap.RSVPs, r)
	}
	if err := rsvpRows.Err(); err != nil {
		return nil, fmt.Errorf("reading rsvps: %w", err)
	}

	// Empty tables serialize as [] rather than null.
	if snap.Members == nil {
		snap.Members = []types.Member{}
	}
	if snap.Events == nil {
		snap.Events = []types.Event{}
	}
	if snap.RSVPs == nil {
		snap.RSVPs = []types.RSVP{}
	}

	return snap, nil
}
