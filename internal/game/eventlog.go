package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	eventLogCapacity = 32
	eventLineHeight  = 15
	eventPanelLines  = 6
)

// Event categories.
const (
	EventMode   = "mode"
	EventSwap   = "swap"
	EventRevert = "revert"
	EventCombo  = "combo"
	EventSelect = "select"
	EventSystem = "system"
)

// Event is a single line in the event log.
type Event struct {
	Frame   int
	Kind    string
	Message string
}

func (e Event) String() string {
	return fmt.Sprintf("[F=%05d] %-7s %s", e.Frame, e.Kind, e.Message)
}

// EventLog is a ring buffer of session events, rendered in the HUD panel and
// inspected by the headless report.
type EventLog struct {
	entries []Event
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]Event, eventLogCapacity)}
}

// Add appends an entry, overwriting the oldest one when full.
func (l *EventLog) Add(frame int, kind, msg string) {
	l.entries[l.head] = Event{Frame: frame, Kind: kind, Message: msg}
	l.head = (l.head + 1) % len(l.entries)
	if l.count < len(l.entries) {
		l.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (l *EventLog) Recent() []Event {
	out := make([]Event, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + len(l.entries)) % len(l.entries)
		out[i] = l.entries[idx]
	}
	return out
}

// Filter returns retained entries of the given kind. Empty kind matches all.
func (l *EventLog) Filter(kind string) []Event {
	var out []Event
	for _, e := range l.Recent() {
		if kind == "" || e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Draw renders the newest entries in a small panel, newest at the bottom.
func (l *EventLog) Draw(screen *ebiten.Image, face text.Face, x, y, w int) {
	h := eventPanelLines*eventLineHeight + 8
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)

	entries := l.Recent()
	if len(entries) > eventPanelLines {
		entries = entries[len(entries)-eventPanelLines:]
	}
	for i, e := range entries {
		clr := color.RGBA{R: 150, G: 150, B: 150, A: 255}
		if i == len(entries)-1 {
			clr = color.RGBA{R: 255, G: 230, B: 90, A: 255}
		}
		drawText(screen, face, e.Message, float64(x+6), float64(y+4+i*eventLineHeight), clr)
	}
}
