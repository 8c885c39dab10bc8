package ingest

import (
	"io"
	"strconv"

	"imu-load/models"
)

// ReadVectorFile loads a vector-per-line sensor log such as
// Panasonic_Gyroscope_sensor_<id>.txt.
func ReadVectorFile(path string) (*models.VectorSeries, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}
	return ParseVectors(readerFor(data), path)
}

// ParseVectors parses lines of the form "timestampNs,v1,...,vn," into a
// series, keeping file order. Every line must carry as many values as the
// first one.
func ParseVectors(r io.Reader, name string) (*models.VectorSeries, error) {
	lines, err := splitLines(r, name)
	if err != nil {
		return nil, err
	}

	timestamps := make([]int64, 0, len(lines))
	values := make([]models.Vector, 0, len(lines))
	width := -1

	for _, l := range lines {
		fields := splitFields(l.text)
		if len(fields) < 2 {
			return nil, lineErr(name, l, "want timestamp and at least one value, got %d fields", len(fields))
		}
		ts, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, lineErr(name, l, "timestamp: %w", err)
		}
		vec, err := parseFloats(fields[1:])
		if err != nil {
			return nil, lineErr(name, l, "%w", err)
		}
		if width < 0 {
			width = len(vec)
		} else if len(vec) != width {
			return nil, lineErr(name, l, "got %d values, earlier lines have %d", len(vec), width)
		}
		timestamps = append(timestamps, ts)
		values = append(values, vec)
	}

	logger().Debug("parsed %s: %d vectors of width %d", name, len(values), width)
	return models.NewVectorSeries(timestamps, values)
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
