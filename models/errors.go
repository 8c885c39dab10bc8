package models

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; every typed error below matches exactly one.
var (
	ErrNaming         = errors.New("naming error")
	ErrParse          = errors.New("parse error")
	ErrSchema         = errors.New("schema error")
	ErrNotFound       = errors.New("not found")
	ErrAmbiguousMatch = errors.New("ambiguous match")
	ErrOutOfRange     = errors.New("out of range")
)

// NamingError reports a video filename outside the video-<id>.mp4 convention.
type NamingError struct {
	Name   string
	Reason string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("video name %q: %s", e.Name, e.Reason)
}

func (e *NamingError) Is(target error) bool { return target == ErrNaming }

// ParseError reports a malformed line or an unreadable file.
// Line is 1-based; 0 means the failure concerns the file as a whole.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// SchemaError reports a structurally wrong file: bad record count or an
// unexpected enum token.
type SchemaError struct {
	File   string
	Line   int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("schema %s:%d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("schema %s: %s", e.File, e.Reason)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// NotFoundError reports an exact-time lookup with no matching reading, or a
// lookup by name that matched nothing (Name set, Timestamp unused).
type NotFoundError struct {
	Timestamp int64
	Name      string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("no stream named %q", e.Name)
	}
	return fmt.Sprintf("no reading at timestamp %d", e.Timestamp)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AmbiguousMatchError reports duplicate timestamps hit by an exact-time lookup.
type AmbiguousMatchError struct {
	Timestamp int64
	Matches   int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d readings share timestamp %d", e.Matches, e.Timestamp)
}

func (e *AmbiguousMatchError) Is(target error) bool { return target == ErrAmbiguousMatch }

// OutOfRangeError reports a timestamp or index outside the stored range.
type OutOfRangeError struct {
	Value       int64
	First, Last int64
	Empty       bool
	Index       bool
}

func (e *OutOfRangeError) Error() string {
	switch {
	case e.Empty:
		return "series has no readings"
	case e.Index:
		return fmt.Sprintf("index %d outside [%d, %d]", e.Value, e.First, e.Last)
	default:
		return fmt.Sprintf("timestamp %d outside [%d, %d]", e.Value, e.First, e.Last)
	}
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }
