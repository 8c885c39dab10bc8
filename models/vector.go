package models

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vector is one multi-axis sensor sample (orientation, acceleration, gyro,
// magnetic field …). Width depends on the sensor, usually 3 or 4.
type Vector []float64

// Blend returns a*v + b*other element-wise. Both vectors must have the same
// width; readers guarantee this within one stream.
func (v Vector) Blend(a float64, other Vector, b float64) Vector {
	out := make([]float64, len(v))
	floats.ScaleTo(out, a, v)
	floats.AddScaled(out, b, other)
	return out
}

// VectorSeries is the stream type produced by the vector-per-line reader.
type VectorSeries = TimeSeries[Vector]

// NewVectorSeries builds a VectorSeries from parallel slices. Every vector
// must have the width of the first.
func NewVectorSeries(timestamps []int64, values []Vector) (*VectorSeries, error) {
	for i := 1; i < len(values); i++ {
		if len(values[i]) != len(values[0]) {
			return nil, fmt.Errorf("vector series: reading %d has width %d, want %d", i, len(values[i]), len(values[0]))
		}
	}
	return NewTimeSeries(timestamps, values)
}
