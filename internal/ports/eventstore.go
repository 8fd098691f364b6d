package ports

import "context"

// EventRecord is one game event as persisted to the match history.
type EventRecord struct {
	Sequence int64  `json:"sequence"`
	Tick     int64  `json:"tick"`
	Kind     string `json:"kind"`
	Payload  any    `json:"payload"`
}

// EventSink persists the ordered event history of a match. Appends happen
// from the match loop, so implementations never see concurrent writes for
// the same match.
type EventSink interface {
	Append(ctx context.Context, matchID string, records []EventRecord) error
}
