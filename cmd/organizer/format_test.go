package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{types.StatusUpcoming, ansiCyan},
		{types.StatusActive, ansiGreen},
		{types.StatusCancelled, ansiRed},
		{types.StatusCompleted, ansiYellow},
		{"something-else", ansiReset},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, statusColor(tt.status))
		})
	}
}

func TestRenderer_PlainWhenNotTerminal(t *testing.T) {
	r := newRenderer(&bytes.Buffer{})

	line := r.member(types.Member{ID: 1, Name: "Ada", Email: "ada@x.com", Role: "member"})
	assert.Equal(t, "  [1] Ada  ada@x.com  role=member", line)
	assert.NotContains(t, line, "\033[")
}

func TestRenderer_EventLine(t *testing.T) {
	r := renderer{}

	line := r.event(types.Event{
		ID:        2,
		Title:     "Meetup",
		EventDate: "2025-06-01",
		Location:  "TBD",
		Capacity:  50,
		Status:    types.StatusUpcoming,
	})
	assert.Equal(t, "  [2] Meetup  2025-06-01  @ TBD  cap=50  [upcoming]", line)
}

func TestRenderer_AttendeeLine(t *testing.T) {
	r := renderer{color: true}

	attending := r.attendee(types.Attendee{Name: "Ada", Email: "ada@x.com", Response: types.ResponseAttending})
	assert.Contains(t, attending, ansiGreen)

	maybe := r.attendee(types.Attendee{Name: "Grace", Email: "grace@x.com", Response: types.ResponseMaybe})
	assert.Contains(t, maybe, ansiYellow)
	assert.False(t, strings.Contains(maybe, ansiGreen+"maybe"), "non-attending responses render yellow")
}

func TestParseEventID(t *testing.T) {
	id, err := parseEventID("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseEventID("meetup")
	assert.Error(t, err)
}
