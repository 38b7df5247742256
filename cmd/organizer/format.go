// Human-readable output formatting. Rendering is pure: a renderer value is
// built per call and carries the only formatting state (whether to color).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

// ANSI escape codes used for terminal output.
const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiCyan   = "\033[0;36m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiBold   = "\033[1m"
	ansiReset  = "\033[0m"
)

// renderer formats entities for terminal display.
type renderer struct {
	color bool
}

// newRenderer returns a renderer that colors output only when w is a
// terminal and NO_COLOR is unset.
func newRenderer(w io.Writer) renderer {
	if os.Getenv("NO_COLOR") != "" {
		return renderer{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return renderer{}
	}
	return renderer{color: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

// paint wraps s in the given ANSI code when coloring is enabled.
func (r renderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

// statusColor maps an event status to its display color.
func statusColor(status string) string {
	switch status {
	case types.StatusUpcoming:
		return ansiCyan
	case types.StatusActive:
		return ansiGreen
	case types.StatusCancelled:
		return ansiRed
	case types.StatusCompleted:
		return ansiYellow
	default:
		return ansiReset
	}
}

// heading formats a section heading line.
func (r renderer) heading(s string) string {
	return "\n" + r.paint(ansiBold, r.paint(ansiBlue, s))
}

// member formats a one-line member summary.
func (r renderer) member(m types.Member) string {
	return fmt.Sprintf("  %s %s  %s  role=%s",
		r.paint(ansiCyan, fmt.Sprintf("[%d]", m.ID)),
		r.paint(ansiBold, m.Name),
		m.Email,
		r.paint(ansiYellow, m.Role))
}

// event formats a one-line event summary with status coloring.
func (r renderer) event(e types.Event) string {
	return fmt.Sprintf("  %s %s  %s  @ %s  cap=%d  [%s]",
		r.paint(ansiCyan, fmt.Sprintf("[%d]", e.ID)),
		r.paint(ansiBold, e.Title),
		e.EventDate,
		e.Location,
		e.Capacity,
		r.paint(statusColor(e.Status), e.Status))
}

// attendee formats a one-line attendee summary. "attending" renders green,
// every other response yellow.
func (r renderer) attendee(a types.Attendee) string {
	color := ansiYellow
	if a.Response == types.ResponseAttending {
		color = ansiGreen
	}
	return fmt.Sprintf("  %s  %s  [%s]",
		r.paint(ansiBold, a.Name),
		a.Email,
		r.paint(color, a.Response))
}

// none formats the placeholder line for empty listings.
func (r renderer) none() string {
	return "  " + r.paint(ansiYellow, "none")
}

// check formats the success marker prefix.
func (r renderer) check() string {
	return r.paint(ansiGreen, "✓")
}
