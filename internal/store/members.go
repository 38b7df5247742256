package store

import (
	"database/sql"
	"fmt"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

// AddMember registers a community member with the current timestamp and
// active set. An empty role defaults to "member". Returns
// types.ErrDuplicateEmail if the email is already registered.
func (s *Store) AddMember(name, email, role string) (*types.Member, error) {
	if role == "" {
		role = types.DefaultRole
	}
	joined := now()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO members (name, email, role, joined_at) VALUES (?, ?, ?, ?)",
		name, email, role, joined,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("registering %q: %w", email, types.ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("inserting member: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading member id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing member: %w", err)
	}

	return &types.Member{
		ID:       id,
		Name:     name,
		Email:    email,
		Role:     role,
		JoinedAt: joined,
		Active:   true,
	}, nil
}

// ListMembers returns all active members in natural store order.
func (s *Store) ListMembers() ([]types.Member, error) {
	rows, err := s.db.Query(
		"SELECT id, name, email, role, joined_at, active FROM members WHERE active = 1",
	)
	if err != nil {
		return nil, fmt.Errorf("querying members: %w", err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

// scanMembers hydrates member rows. The column order must match the SELECT
// lists in this package.
func scanMembers(rows *sql.Rows) ([]types.Member, error) {
	var members []types.Member
	for rows.Next() {
		var m types.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.JoinedAt, &m.Active); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading members: %w", err)
	}
	return members, nil
}

// memberIDByEmail resolves an email to a member id. The second return value
// reports whether a member was found.
func (s *Store) memberIDByEmail(email string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM members WHERE email = ?", email).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("looking up member %q: %w", email, err)
	}
	return id, true, nil
}
