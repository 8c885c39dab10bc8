package views

import (
	"fmt"

	"imu-load/models"
)

// Column naming for exported streams. A vector field "pan_gyro" of width 3
// exports as pan_gyro_0..pan_gyro_2; a matrix field "rot" as rot_m00..rot_m33.

// VectorColumns names the columns of one vector stream.
func VectorColumns(field string, width int) []string {
	cols := make([]string, width)
	for i := range cols {
		cols[i] = fmt.Sprintf("%s_%d", field, i)
	}
	return cols
}

// MatrixColumns names the 16 columns of one matrix stream, row-major.
func MatrixColumns(field string) []string {
	cols := make([]string, 0, models.MatrixDim*models.MatrixDim)
	for i := 0; i < models.MatrixDim; i++ {
		for j := 0; j < models.MatrixDim; j++ {
			cols = append(cols, fmt.Sprintf("%s_m%d%d", field, i, j))
		}
	}
	return cols
}

// StreamHeader is the CSV header for dumping one stream: the timestamp then
// its value columns. Kinds without numeric payloads have no header.
func StreamHeader(field string, kind models.AdapterKind, width int) ([]string, error) {
	h := []string{"timestamp_ns"}
	switch kind {
	case models.KindVector:
		return append(h, VectorColumns(field, width)...), nil
	case models.KindMatrix:
		return append(h, MatrixColumns(field)...), nil
	}
	return nil, fmt.Errorf("stream %s of kind %s has no tabular form", field, kind)
}
