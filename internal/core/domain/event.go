package domain

import "time"

// ChangeKind names what changed in a ChangeEvent.
type ChangeKind string

const (
	ShiftChanged     ChangeKind = "shift"
	MovementsChanged ChangeKind = "movements"
	IncidentsChanged ChangeKind = "incidents"
)

// ChangeEvent announces that a shift or one of its child collections changed.
// Subscribers reload the snapshot rather than applying the event as a delta.
type ChangeEvent struct {
	Kind       ChangeKind `json:"kind"`
	ShiftID    string     `json:"shiftID"`
	OccurredAt time.Time  `json:"occurredAt"`
}
