// Package store implements the SQLite data store for the community organizer.
package store

// Schema DDL for all tables. Every statement is idempotent so the schema can
// be applied on each open without migration versioning.
const (
	createMembers = `CREATE TABLE IF NOT EXISTS members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    role TEXT DEFAULT 'member',
    joined_at TEXT NOT NULL,
    active INTEGER DEFAULT 1
);`

	createEvents = `CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT DEFAULT '',
    location TEXT DEFAULT 'TBD',
    event_date TEXT NOT NULL,
    capacity INTEGER DEFAULT 50,
    organizer_id INTEGER REFERENCES members(id),
    created_at TEXT NOT NULL,
    status TEXT DEFAULT 'upcoming'
);`

	createRSVPs = `CREATE TABLE IF NOT EXISTS rsvps (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_id INTEGER NOT NULL REFERENCES events(id),
    member_id INTEGER NOT NULL REFERENCES members(id),
    response TEXT DEFAULT 'attending',
    rsvp_at TEXT NOT NULL,
    notes TEXT DEFAULT '',
    UNIQUE(event_id, member_id)
);`

	idxRSVPsEvent = `CREATE INDEX IF NOT EXISTS idx_rsvps_event ON rsvps(event_id);`
)

// schemaDDL lists all schema statements in dependency order.
var schemaDDL = []string{
	createMembers,
	createEvents,
	createRSVPs,
	idxRSVPsEvent,
}
