package ingest

import (
	"io"
	"strconv"

	"imu-load/models"
)

// matrixFields is timestamp + mystery value + 16 matrix elements.
const matrixFields = 2 + models.MatrixDim*models.MatrixDim

// ReadMatrixFile loads a matrix-per-line log such as RotationMatrix_<id>.txt.
func ReadMatrixFile(path string) (*models.MatrixSeries, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}
	return ParseMatrices(readerFor(data), path)
}

// ParseMatrices parses lines of the form "timestampNs,mystery,m0,...,m15,".
// The 16 elements are laid out row-major; the mystery value is kept as text.
func ParseMatrices(r io.Reader, name string) (*models.MatrixSeries, error) {
	lines, err := splitLines(r, name)
	if err != nil {
		return nil, err
	}

	timestamps := make([]int64, 0, len(lines))
	matrices := make([]models.Matrix, 0, len(lines))
	mystery := make([]string, 0, len(lines))

	for _, l := range lines {
		fields := splitFields(l.text)
		if len(fields) != matrixFields {
			return nil, lineErr(name, l, "want %d fields, got %d", matrixFields, len(fields))
		}
		ts, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, lineErr(name, l, "timestamp: %w", err)
		}
		elems, err := parseFloats(fields[2:])
		if err != nil {
			return nil, lineErr(name, l, "%w", err)
		}
		m, err := models.NewMatrix(elems)
		if err != nil {
			return nil, lineErr(name, l, "%w", err)
		}
		timestamps = append(timestamps, ts)
		matrices = append(matrices, m)
		mystery = append(mystery, fields[1])
	}

	logger().Debug("parsed %s: %d matrices", name, len(matrices))
	return models.NewMatrixSeries(timestamps, matrices, mystery)
}
