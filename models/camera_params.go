package models

// CameraParamsEntry is one line of the camera parameter log.
type CameraParamsEntry struct {
	TimestampNs int64               `json:"timestamp_ns"`
	PhoneID     string              `json:"phone_id"`
	Attributes  map[string][]string `json:"attributes"`
}

// CameraParamsLog is an irregular event log, not a sampled signal, so it is
// kept as a plain list and cannot be interpolated.
type CameraParamsLog struct {
	Entries []CameraParamsEntry
}

func (l *CameraParamsLog) NumReadings() int { return len(l.Entries) }

// TotalElapsedTime returns last - first. Unlike TimeSeries, a log with a
// single entry reports -1 instead of 0, meaning "no elapsed time available".
// An empty log is an error.
func (l *CameraParamsLog) TotalElapsedTime() (int64, error) {
	switch len(l.Entries) {
	case 0:
		return 0, &OutOfRangeError{Empty: true}
	case 1:
		return -1, nil
	}
	return l.Entries[len(l.Entries)-1].TimestampNs - l.Entries[0].TimestampNs, nil
}
