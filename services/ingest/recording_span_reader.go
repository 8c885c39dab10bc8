package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"imu-load/models"
)

const commentPrefix = "//"

// ReadRecordingSpanFile loads the Start/Stop marker file of a capture.
func ReadRecordingSpanFile(path string) (*models.RecordingSpan, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}
	return ParseRecordingSpan(readerFor(data), path)
}

// ParseRecordingSpan expects exactly two non-comment lines,
// "Start::ts::wallMs::label" then "Stop::ts::wallMs::label".
func ParseRecordingSpan(r io.Reader, name string) (*models.RecordingSpan, error) {
	all, err := splitLines(r, name)
	if err != nil {
		return nil, err
	}
	var lines []line
	for _, l := range all {
		if strings.HasPrefix(strings.TrimSpace(l.text), commentPrefix) {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) != 2 {
		return nil, &models.SchemaError{File: name, Reason: fmt.Sprintf("want 2 event lines, got %d", len(lines))}
	}

	start, err := parseEvent(name, lines[0], models.EventStart)
	if err != nil {
		return nil, err
	}
	stop, err := parseEvent(name, lines[1], models.EventStop)
	if err != nil {
		return nil, err
	}
	return &models.RecordingSpan{Start: start, Stop: stop}, nil
}

func parseEvent(name string, l line, want models.EventType) (models.RecordingEvent, error) {
	var ev models.RecordingEvent
	parts := strings.SplitN(strings.TrimSpace(l.text), "::", 4)
	if len(parts) != 4 {
		return ev, lineErr(name, l, "want eventType::timestampNs::wallClockMs::dateLabel, got %d fields", len(parts))
	}
	if models.EventType(parts[0]) != want {
		return ev, &models.SchemaError{File: name, Line: l.num, Reason: fmt.Sprintf("event %q, want %q", parts[0], want)}
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ev, lineErr(name, l, "timestamp: %w", err)
	}
	wall, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return ev, lineErr(name, l, "wall clock: %w", err)
	}
	return models.RecordingEvent{
		Type:        want,
		TimestampNs: ts,
		WallClockMs: wall,
		DateLabel:   parts[3],
	}, nil
}
