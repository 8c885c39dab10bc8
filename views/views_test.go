package views

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imu-load/models"
)

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"acc_0", "acc_1", "acc_2"}, VectorColumns("acc", 3))
	assert.Empty(t, VectorColumns("acc", 0))

	m := MatrixColumns("rot")
	require.Len(t, m, 16)
	assert.Equal(t, "rot_m00", m[0])
	assert.Equal(t, "rot_m03", m[3])
	assert.Equal(t, "rot_m10", m[4])
	assert.Equal(t, "rot_m33", m[15])
}

func TestStreamHeader(t *testing.T) {
	h, err := StreamHeader("gyro", models.KindVector, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"timestamp_ns", "gyro_0", "gyro_1"}, h)

	h, err = StreamHeader("rot", models.KindMatrix, 0)
	require.NoError(t, err)
	assert.Len(t, h, 17)

	_, err = StreamHeader("cam", models.KindCameraParams, 0)
	assert.Error(t, err)
	_, err = StreamHeader("rec", models.KindRecordingSpan, 0)
	assert.Error(t, err)
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf, 0, []string{"a", "b"})
	require.NoError(t, err)

	require.NoError(t, w.WriteRow([]string{"1", "x,y"}))
	require.NoError(t, w.WriteRow([]string{"2", "z"}))
	assert.Empty(t, buf.String(), "buffered until flush")

	require.NoError(t, w.Flush())
	assert.Equal(t, "a,b\n1,\"x,y\"\n2,z\n", buf.String())
	assert.Equal(t, uint64(2), w.Rows())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCSVWriter_FlushError(t *testing.T) {
	w, err := NewCSVWriter(failingWriter{}, 16, nil)
	require.NoError(t, err)
	require.NoError(t, w.WriteRow([]string{"0123456789", "0123456789"}))
	assert.Error(t, w.Flush())
}
