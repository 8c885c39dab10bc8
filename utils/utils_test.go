package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imu-load/models"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{" warn ", WARN},
		{"warning", WARN},
		{"Error", ERROR},
		{"fatal", FATAL},
	}
	for _, tc := range tests {
		got, err := ParseLogLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
	assert.Equal(t, "UNKNOWN", LogLevel(12).String())
}

func TestLogger_LevelsAndComponents(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, INFO)
	ing := l.With("ingest")

	l.Debug("hidden %d", 1)
	ing.Info("parsed %s", "gyro")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO]")
	assert.Contains(t, buf.String(), "component=ingest  parsed gyro")

	buf.Reset()
	ing.SetLevel(DEBUG)
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "[DEBUG]")

	var other bytes.Buffer
	l.SetOutput(&other)
	ing.Warn("moved")
	assert.Contains(t, other.String(), "[WARN]")
	assert.NotContains(t, buf.String(), "moved")
}

func TestL_DefaultsBeforeInit(t *testing.T) {
	assert.NotNil(t, L())
	assert.NotNil(t, L().With("x"))
}

func TestTimeHelpers(t *testing.T) {
	ns := int64(1350473301123456789)
	assert.Equal(t, ns, NanoToTime(ns).UnixNano())
	assert.Equal(t, "2012-10-17_11-28-21.123456789", FormatTimestamp(ns))

	assert.Equal(t, int64(33_000_000), MillisToNano(33))
	assert.Equal(t, "1.5s", FormatElapsed(int64(1500*time.Millisecond)))
	assert.Equal(t, "0s", FormatElapsed(0))
	assert.Equal(t, "n/a", FormatElapsed(-1))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imuload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
alignment:
  fields: [rot, pan_gyro]
  clip_to_recording: true
profiles:
  - name: htc1x
    rotation_field: rot
    streams:
      - {prefix: RotationMatrix_, field: rot, kind: matrix}
  - name: nexus
    streams:
      - {prefix: Gyro_, field: gyro, kind: vector}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultStepMs, cfg.Alignment.StepMs)
	assert.Equal(t, []string{"rot", "pan_gyro"}, cfg.Alignment.Fields)
	assert.True(t, cfg.Alignment.ClipToRecording)
	require.Len(t, cfg.Profiles, 2)

	// config profiles shadow built-ins
	p, err := cfg.Profile("HTC1X")
	require.NoError(t, err)
	assert.Len(t, p.Streams, 1)

	p, err = cfg.Profile(models.ProfileHTC1XRecording)
	require.NoError(t, err)
	assert.Len(t, p.Streams, 13)

	_, err = cfg.Profile("unknown")
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad level":     "logging: {level: loud}\n",
		"negative step": "alignment: {step_ms: -5}\n",
		"bad kind":      "profiles:\n  - {name: p, streams: [{prefix: A_, field: a, kind: blob}]}\n",
		"dup profile":   "profiles:\n  - {name: p, streams: [{prefix: A_, field: a, kind: vector}]}\n  - {name: P, streams: [{prefix: B_, field: b, kind: vector}]}\n",
		"no streams":    "profiles:\n  - {name: p}\n",
		"not yaml":      "logging: [\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, src))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultStepMs, cfg.Alignment.StepMs)

	p, err := cfg.Profile(models.ProfileHTC1X)
	require.NoError(t, err)
	assert.Equal(t, "rot", p.RotationField)
}

func TestShippedConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "config", "imuload.yaml"))
	require.NoError(t, err)
	_, err = cfg.Profile("htc1x-imu-only")
	assert.NoError(t, err)
}
