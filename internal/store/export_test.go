package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

func TestExport(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddMember("Ada", "ada@x.com", "")
	require.NoError(t, err)
	e, err := s.CreateEvent(EventParams{
		Title:          "Meetup",
		EventDate:      "2025-06-01",
		OrganizerEmail: "ada@x.com",
	})
	require.NoError(t, err)
	_, err = s.RecordRSVP(e.ID, "ada@x.com", types.ResponseAttending, "")
	require.NoError(t, err)

	snap, err := s.Export()
	require.NoError(t, err)

	require.Len(t, snap.Members, 1)
	require.Len(t, snap.Events, 1)
	require.Len(t, snap.RSVPs, 1)
	assert.NotEmpty(t, snap.ExportedAt)
	assert.Equal(t, "ada@x.com", snap.Members[0].Email)
	require.NotNil(t, snap.Events[0].OrganizerID)
	assert.Equal(t, snap.Members[0].ID, *snap.Events[0].OrganizerID)
	assert.Equal(t, snap.Members[0].ID, snap.RSVPs[0].MemberID)
}

func TestExport_IncludesInactiveMembers(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddMember("Ada", "ada@x.com", "")
	require.NoError(t, err)
	_, err = s.db.Exec("UPDATE members SET active = 0 WHERE email = ?", "ada@x.com")
	require.NoError(t, err)

	snap, err := s.Export()
	require.NoError(t, err)
	require.Len(t, snap.Members, 1)
	assert.False(t, snap.Members[0].Active)
}

func TestExport_SerializedShape(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddMember("Ada", "ada@x.com", "")
	require.NoError(t, err)
	_, err = s.CreateEvent(EventParams{Title: "Meetup", EventDate: "2025-06-01"})
	require.NoError(t, err)

	snap, err := s.Export()
	require.NoError(t, err)

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"members", "events", "rsvps", "exported_at"} {
		assert.Contains(t, doc, key)
	}

	// An unresolved organizer serializes as null, not zero.
	var events []map[string]any
	require.NoError(t, json.Unmarshal(doc["events"], &events))
	require.Len(t, events, 1)
	assert.Nil(t, events[0]["organizer_id"])
}
