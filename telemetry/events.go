// Package telemetry provides per-window scene statistics, an event log and
// tick timing, with CSV output.
package telemetry

import (
	"fmt"
	"log/slog"
)

// EventType identifies telemetry events.
type EventType string

const (
	EventTransition EventType = "transition"
	EventBatch      EventType = "batch"
	EventExplode    EventType = "explode"
	EventClimax     EventType = "climax"
	EventFade       EventType = "fade"
	EventAsset      EventType = "asset_unavailable"
)

// Event is one notable moment in a run. Written to events.csv.
type Event struct {
	RunID  string    `csv:"run_id"`
	Tick   int       `csv:"tick"`
	Type   EventType `csv:"type"`
	From   string    `csv:"from"`
	To     string    `csv:"to"`
	Count  int       `csv:"count"`
	Detail string    `csv:"detail"`
}

// NewTransitionEvent records a scene change.
func NewTransitionEvent(tick int, from, to string) Event {
	return Event{Tick: tick, Type: EventTransition, From: from, To: to}
}

// NewBatchEvent records a spawner admission.
func NewBatchEvent(tick, size, spawned int) Event {
	return Event{Tick: tick, Type: EventBatch, Count: size, Detail: fmt.Sprintf("spawned=%d", spawned)}
}

// NewExplodeEvent records figures freed into debris.
func NewExplodeEvent(tick, figures, debris int) Event {
	return Event{Tick: tick, Type: EventExplode, Count: debris, Detail: fmt.Sprintf("figures=%d", figures)}
}

// LogEvent logs the event using slog.
func (e Event) LogEvent() {
	slog.Info("event",
		"type", string(e.Type),
		"tick", e.Tick,
		"from", e.From,
		"to", e.To,
		"count", e.Count,
		"detail", e.Detail,
	)
}
