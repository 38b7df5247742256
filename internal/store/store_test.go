package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

// setupStore opens a store in an isolated temp directory and registers a
// cleanup to close it.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, filepath.Join(dir, DBFileName), s.Path())
}

func TestOpen_SchemaIdempotent(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)
	_, err = s1.AddMember("Ada", "ada@x.com", "")
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Reopening the same directory must reapply the schema without
	// disturbing existing rows.
	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	members, err := s2.ListMembers()
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "ada@x.com", members[0].Email)
}

func TestStats(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddMember("Ada", "ada@x.com", "")
	require.NoError(t, err)
	_, err = s.AddMember("Grace", "grace@x.com", "organizer")
	require.NoError(t, err)

	_, err = s.CreateEvent(EventParams{Title: "Meetup", EventDate: "2025-06-01"})
	require.NoError(t, err)

	_, err = s.RecordRSVP(1, "ada@x.com", types.ResponseAttending, "")
	require.NoError(t, err)
	_, err = s.RecordRSVP(1, "grace@x.com", types.ResponseMaybe, "")
	require.NoError(t, err)

	st, err := s.Stats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), st.ActiveMembers)
	assert.Equal(t, int64(1), st.TotalEvents)
	assert.Equal(t, int64(1), st.ConfirmedRSVPs, "only attending responses count")
	assert.Equal(t, s.Path(), st.DBPath)
}

func TestStats_InactiveMembersExcluded(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddMember("Ada", "ada@x.com", "")
	require.NoError(t, err)
	_, err = s.AddMember("Grace", "grace@x.com", "")
	require.NoError(t, err)

	_, err = s.db.Exec("UPDATE members SET active = 0 WHERE email = ?", "grace@x.com")
	require.NoError(t, err)

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.ActiveMembers)
}
