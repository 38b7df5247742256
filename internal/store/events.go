package store

import (
	"database/sql"
	"fmt"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

// EventParams holds the caller-supplied fields for CreateEvent. Location and
// Capacity fall back to their defaults when left zero. OrganizerEmail is
// resolved best-effort: an unknown or empty email leaves the organizer unset
// without error.
type EventParams struct {
	Title          string
	EventDate      string
	Location       string
	Description    string
	Capacity       int64
	OrganizerEmail string
}

// CreateEvent persists an event with status "upcoming". The event date is
// stored as given; no date or capacity validation is performed.
func (s *Store) CreateEvent(p EventParams) (*types.Event, error) {
	if p.Location == "" {
		p.Location = types.DefaultLocation
	}
	if p.Capacity == 0 {
		p.Capacity = types.DefaultCapacity
	}

	var organizerID *int64
	if p.OrganizerEmail != "" {
		id, ok, err := s.memberIDByEmail(p.OrganizerEmail)
		if err != nil {
			return nil, err
		}
		if ok {
			organizerID = &id
		}
	}

	created := now()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO events (title, description, location, event_date, capacity, organizer_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.Title, p.Description, p.Location, p.EventDate, p.Capacity, organizerID, created,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading event id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing event: %w", err)
	}

	return &types.Event{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		EventDate:   p.EventDate,
		Capacity:    p.Capacity,
		OrganizerID: organizerID,
		CreatedAt:   created,
		Status:      types.StatusUpcoming,
	}, nil
}

// ListEvents returns all events ordered ascending by event date string.
// A non-empty status filters to exact matches in the same order.
func (s *Store) ListEvents(status string) ([]types.Event, error) {
	const cols = "id, title, description, location, event_date, capacity, organizer_id, created_at, status"

	var (
		rows *sql.Rows
		err  error
	)
	if status != "" {
		rows, err = s.db.Query(
			"SELECT "+cols+" FROM events WHERE status = ? ORDER BY event_date", status,
		)
	} else {
		rows, err = s.db.Query("SELECT " + cols + " FROM events ORDER BY event_date")
	}
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// scanEvents hydrates event rows. organizer_id is nullable.
func scanEvents(rows *sql.Rows) ([]types.Event, error) {
	var events []types.Event
	for rows.Next() {
		var (
			e         types.Event
			organizer sql.NullInt64
		)
		err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.EventDate,
			&e.Capacity, &organizer, &e.CreatedAt, &e.Status)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		if organizer.Valid {
			e.OrganizerID = &organizer.Int64
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return events, nil
}
