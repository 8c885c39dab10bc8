package utils

import (
	"time"
)

// NanoToTime converts a nanosecond Unix timestamp back to time.Time.
func NanoToTime(ns int64) time.Time {
	return time.Unix(0, ns)
}

// FormatTimestamp converts ns-epoch to a human-friendly UTC string.
func FormatTimestamp(ns int64) string {
	return NanoToTime(ns).UTC().Format("2006-01-02_15-04-05.000000000")
}

// MillisToNano converts a millisecond count (wall clock or step size) to ns.
func MillisToNano(ms int64) int64 {
	return ms * int64(time.Millisecond)
}

// FormatElapsed renders a nanosecond span such as 12.5s. Negative spans are
// the "no elapsed time" sentinel and print as "n/a".
func FormatElapsed(ns int64) string {
	if ns < 0 {
		return "n/a"
	}
	return time.Duration(ns).String()
}
