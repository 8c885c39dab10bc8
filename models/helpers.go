package models

import (
	"strconv"
)

// ─── shared formatting helpers (package-private) ────────────────────────

func itoa64(v int64) string { return strconv.FormatInt(v, 10) }
func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// ReadingRow formats one stored reading as its timestamp followed by its
// values. Matrices are passed flattened row-major.
func ReadingRow(ts int64, values []float64) []string {
	rec := AlignedRecord{TimestampNs: ts, Values: values}
	return rec.CSVRow()
}
