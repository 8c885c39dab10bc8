package models

// Stream is what every loaded sensor file becomes, whatever its schema.
type Stream interface {
	NumReadings() int
	TotalElapsedTime() (int64, error)
}

var (
	_ Stream = (*VectorSeries)(nil)
	_ Stream = (*MatrixSeries)(nil)
	_ Stream = (*CameraParamsLog)(nil)
	_ Stream = (*RecordingSpan)(nil)
)

// KindOf reports the adapter kind that produces s, or false for foreign types.
func KindOf(s Stream) (AdapterKind, bool) {
	switch s.(type) {
	case *VectorSeries:
		return KindVector, true
	case *MatrixSeries:
		return KindMatrix, true
	case *CameraParamsLog:
		return KindCameraParams, true
	case *RecordingSpan:
		return KindRecordingSpan, true
	}
	return 0, false
}
