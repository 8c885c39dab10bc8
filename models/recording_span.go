package models

// EventType is the first token of a recording start/stop line.
type EventType string

const (
	EventStart EventType = "Start"
	EventStop  EventType = "Stop"
)

// RecordingEvent marks the start or stop of a capture.
type RecordingEvent struct {
	Type        EventType `json:"type"`
	TimestampNs int64     `json:"timestamp_ns"`  // sensor clock
	WallClockMs int64     `json:"wall_clock_ms"` // phone wall clock
	DateLabel   string    `json:"date_label"`
}

// RecordingSpan is the Start/Stop pair bounding one capture. The two events
// are not checked for ordering.
type RecordingSpan struct {
	Start RecordingEvent
	Stop  RecordingEvent
}

func (r *RecordingSpan) NumReadings() int { return 2 }

func (r *RecordingSpan) TotalElapsedTime() (int64, error) {
	return r.Stop.TimestampNs - r.Start.TimestampNs, nil
}

// Contains reports whether t lies within [Start, Stop] on the sensor clock.
func (r *RecordingSpan) Contains(t int64) bool {
	return t >= r.Start.TimestampNs && t <= r.Stop.TimestampNs
}
