package ingest

import (
	"fmt"

	"imu-load/models"
)

// Load parses path with the adapter for kind. The returned stream is nil
// whenever err is not.
func Load(kind models.AdapterKind, path string) (models.Stream, error) {
	var (
		s   models.Stream
		err error
	)
	switch kind {
	case models.KindVector:
		var v *models.VectorSeries
		if v, err = ReadVectorFile(path); err == nil {
			s = v
		}
	case models.KindMatrix:
		var m *models.MatrixSeries
		if m, err = ReadMatrixFile(path); err == nil {
			s = m
		}
	case models.KindRecordingSpan:
		var r *models.RecordingSpan
		if r, err = ReadRecordingSpanFile(path); err == nil {
			s = r
		}
	case models.KindCameraParams:
		var c *models.CameraParamsLog
		if c, err = ReadCameraParamsFile(path); err == nil {
			s = c
		}
	default:
		err = fmt.Errorf("no adapter for kind %s", kind)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
