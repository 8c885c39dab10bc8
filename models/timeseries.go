package models

import (
	"fmt"
	"sort"
)

// Blendable is any payload that can form the weighted sum a*x + b*y.
// Vector and Matrix both satisfy it.
type Blendable[T any] interface {
	Blend(a float64, other T, b float64) T
}

// TimeSeries pairs nanosecond timestamps, normally ascending, with one
// reading each.
// Index i of timestamps belongs to index i of values. Timestamps are kept in
// the order they were read and are never re-sorted; a series is immutable
// once built.
type TimeSeries[T Blendable[T]] struct {
	timestamps []int64
	values     []T
	ascending  bool // non-decreasing timestamps, checked once at build time
}

// NewTimeSeries builds a series from parallel slices. The slices are owned by
// the series afterwards.
func NewTimeSeries[T Blendable[T]](timestamps []int64, values []T) (*TimeSeries[T], error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("timeseries: %d timestamps but %d values", len(timestamps), len(values))
	}
	return &TimeSeries[T]{timestamps: timestamps, values: values, ascending: nonDecreasing(timestamps)}, nil
}

func nonDecreasing(ts []int64) bool {
	for i := 1; i < len(ts); i++ {
		if ts[i] < ts[i-1] {
			return false
		}
	}
	return true
}

func (s *TimeSeries[T]) NumReadings() int { return len(s.timestamps) }

// TotalElapsedTime returns last - first. A single-reading series yields 0;
// use NumReadings to tell that apart from a real zero-length span.
func (s *TimeSeries[T]) TotalElapsedTime() (int64, error) {
	first, last, err := s.Bounds()
	if err != nil {
		return 0, err
	}
	return last - first, nil
}

// Bounds returns the first and last timestamps.
func (s *TimeSeries[T]) Bounds() (first, last int64, err error) {
	if len(s.timestamps) == 0 {
		return 0, 0, &OutOfRangeError{Empty: true}
	}
	return s.timestamps[0], s.timestamps[len(s.timestamps)-1], nil
}

func (s *TimeSeries[T]) ReadingAt(i int) (T, error) {
	if err := s.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return s.values[i], nil
}

func (s *TimeSeries[T]) TimestampAt(i int) (int64, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.timestamps[i], nil
}

func (s *TimeSeries[T]) checkIndex(i int) error {
	n := len(s.timestamps)
	if n == 0 {
		return &OutOfRangeError{Empty: true}
	}
	if i < 0 || i >= n {
		return &OutOfRangeError{Value: int64(i), First: 0, Last: int64(n - 1), Index: true}
	}
	return nil
}

// ReadingAtExactTime returns the single reading stamped t. Duplicate
// timestamps are a data error and are reported, never resolved. Series read
// out of order are scanned in full.
func (s *TimeSeries[T]) ReadingAtExactTime(t int64) (T, error) {
	var zero T
	idx, matches := s.exactMatches(t)
	switch matches {
	case 0:
		return zero, &NotFoundError{Timestamp: t}
	case 1:
		return s.values[idx], nil
	default:
		return zero, &AmbiguousMatchError{Timestamp: t, Matches: matches}
	}
}

// exactMatches counts readings stamped t and returns the index of the first.
func (s *TimeSeries[T]) exactMatches(t int64) (first, matches int) {
	if !s.ascending {
		first = -1
		for i, ts := range s.timestamps {
			if ts == t {
				if matches == 0 {
					first = i
				}
				matches++
			}
		}
		return first, matches
	}
	lo := sort.Search(len(s.timestamps), func(i int) bool { return s.timestamps[i] >= t })
	hi := lo
	for hi < len(s.timestamps) && s.timestamps[hi] == t {
		hi++
	}
	return lo, hi - lo
}

// CheckInRange fails unless first <= t <= last.
func (s *TimeSeries[T]) CheckInRange(t int64) error {
	first, last, err := s.Bounds()
	if err != nil {
		return err
	}
	if t < first || t > last {
		return &OutOfRangeError{Value: t, First: first, Last: last}
	}
	return nil
}

// FirstAtOrBefore returns the largest timestamp <= t and its index.
func (s *TimeSeries[T]) FirstAtOrBefore(t int64) (int64, int, error) {
	first, last, err := s.Bounds()
	if err != nil {
		return 0, 0, err
	}
	idx := s.upperBound(t) - 1
	if idx < 0 {
		return 0, 0, &OutOfRangeError{Value: t, First: first, Last: last}
	}
	return s.timestamps[idx], idx, nil
}

// FirstStrictlyAfter returns the smallest timestamp > t and its index.
// When t is exactly the final timestamp it returns (t, NumReadings()): the
// index is one past the end and must not be used to fetch a reading.
func (s *TimeSeries[T]) FirstStrictlyAfter(t int64) (int64, int, error) {
	first, last, err := s.Bounds()
	if err != nil {
		return 0, 0, err
	}
	idx := s.upperBound(t)
	if idx < len(s.timestamps) {
		return s.timestamps[idx], idx, nil
	}
	if t == last {
		return t, len(s.timestamps), nil
	}
	return 0, 0, &OutOfRangeError{Value: t, First: first, Last: last}
}

// upperBound is the index of the first timestamp strictly greater than t.
func (s *TimeSeries[T]) upperBound(t int64) int {
	return sort.Search(len(s.timestamps), func(i int) bool { return s.timestamps[i] > t })
}

// InterpolatedAt blends the two readings bracketing t. The earlier reading
// gets weight frac and the later one 1-frac, where frac is the position of t
// between them. A reading stamped exactly t is returned as stored, which
// also covers both ends of the series; several readings stamped t are an
// AmbiguousMatchError, as for ReadingAtExactTime.
func (s *TimeSeries[T]) InterpolatedAt(t int64) (T, error) {
	var zero T
	if err := s.CheckInRange(t); err != nil {
		return zero, err
	}
	aboveTs, aboveIdx, err := s.FirstStrictlyAfter(t)
	if err != nil {
		return zero, err
	}
	belowTs, belowIdx, err := s.FirstAtOrBefore(t)
	if err != nil {
		return zero, err
	}
	if belowTs == t {
		return s.ReadingAtExactTime(t)
	}
	if aboveIdx >= len(s.values) {
		return s.values[belowIdx], nil
	}

	diff := float64(aboveTs - belowTs)
	frac := float64(t-belowTs) / diff
	return s.values[belowIdx].Blend(frac, s.values[aboveIdx], 1-frac), nil
}
