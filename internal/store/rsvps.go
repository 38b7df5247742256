package store

import (
	"fmt"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

// RecordRSVP records a member's response to an event. The email must resolve
// to an existing member; otherwise a *types.MemberNotFoundError is returned
// and no row is written. A repeat RSVP for the same (event, member) pair
// replaces the prior row. The event id is not checked against existing
// events. An empty response defaults to "attending".
func (s *Store) RecordRSVP(eventID int64, email, response, notes string) (*types.RSVP, error) {
	memberID, ok, err := s.memberIDByEmail(email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.MemberNotFoundError{Email: email}
	}

	if response == "" {
		response = types.ResponseAttending
	}
	at := now()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT OR REPLACE INTO rsvps (event_id, member_id, response, rsvp_at, notes) VALUES (?, ?, ?, ?, ?)",
		eventID, memberID, response, at, notes,
	)
	if err != nil {
		return nil, fmt.Errorf("recording rsvp: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading rsvp id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing rsvp: %w", err)
	}

	return &types.RSVP{
		ID:       id,
		EventID:  eventID,
		MemberID: memberID,
		Response: response,
		RSVPAt:   at,
		Notes:    notes,
	}, nil
}

// Attendees returns every RSVP for the event joined with the responding
// member's name and email, ordered by RSVP timestamp ascending. All response
// kinds are included, "maybe" and "declined" alongside "attending".
func (s *Store) Attendees(eventID int64) ([]types.Attendee, error) {
	rows, err := s.db.Query(
		`SELECT m.name, m.email, r.response, r.rsvp_at
         FROM rsvps r JOIN members m ON m.id = r.member_id
         WHERE r.event_id = ? ORDER BY r.rsvp_at, r.id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying attendees: %w", err)
	}
	defer rows.Close()

	var attendees []types.Attendee
	for rows.Next() {
		var a types.Attendee
		if err := rows.Scan(&a.Name, &a.Email, &a.Response, &a.RSVPAt); err != nil {
			return nil, fmt.Errorf("scanning attendee: %w", err)
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading attendees: %w", err)
	}
	return attendees, nil
}
