package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAdapterKind_StringRoundTrip(t *testing.T) {
	for _, k := range []AdapterKind{KindVector, KindMatrix, KindRecordingSpan, KindCameraParams} {
		got, err := ParseAdapterKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "unknown", AdapterKind(42).String())

	_, err := ParseAdapterKind("quaternion")
	assert.Error(t, err)
}

func TestRecorderProfile_YAML(t *testing.T) {
	src := `
name: test-rig
rotation_field: rot
streams:
  - {prefix: Gyro_, field: gyro, kind: vector}
  - {prefix: RotationMatrix_, field: rot, kind: Matrix}
  - {prefix: CameraParams_, field: cam, kind: camera_params}
`
	var p RecorderProfile
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))
	require.NoError(t, p.Validate())

	assert.Equal(t, "test-rig", p.Name)
	assert.Equal(t, []StreamSpec{
		{FilePrefix: "Gyro_", FieldName: "gyro", Kind: KindVector},
		{FilePrefix: "RotationMatrix_", FieldName: "rot", Kind: KindMatrix},
		{FilePrefix: "CameraParams_", FieldName: "cam", Kind: KindCameraParams},
	}, p.Streams)

	out, err := yaml.Marshal(&p)
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: camera_params")

	bad := "name: x\nstreams:\n  - {prefix: A_, field: a, kind: sparse}\n"
	assert.Error(t, yaml.Unmarshal([]byte(bad), &p))
}

func TestRecorderProfile_Validate(t *testing.T) {
	base := func() *RecorderProfile {
		return &RecorderProfile{
			Name:          "p",
			RotationField: "rot",
			Streams: []StreamSpec{
				{"Gyro_", "gyro", KindVector},
				{"RotationMatrix_", "rot", KindMatrix},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(p *RecorderProfile)
	}{
		{"empty name", func(p *RecorderProfile) { p.Name = " " }},
		{"no streams", func(p *RecorderProfile) { p.Streams = nil; p.RotationField = "" }},
		{"empty prefix", func(p *RecorderProfile) { p.Streams[0].FilePrefix = "" }},
		{"empty field", func(p *RecorderProfile) { p.Streams[0].FieldName = "" }},
		{"duplicate field", func(p *RecorderProfile) { p.Streams[0].FieldName = "rot" }},
		{"unknown kind", func(p *RecorderProfile) { p.Streams[0].Kind = AdapterKind(9) }},
		{"rotation field missing", func(p *RecorderProfile) { p.RotationField = "nope" }},
		{"rotation field not matrix", func(p *RecorderProfile) { p.RotationField = "gyro" }},
		{"recording field not span", func(p *RecorderProfile) { p.RecordingField = "gyro" }},
	}

	require.NoError(t, base().Validate())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestBuiltinProfiles(t *testing.T) {
	for _, p := range BuiltinProfiles() {
		assert.NoError(t, p.Validate(), p.Name)
	}

	htc, ok := LookupProfile("HTC1X")
	require.True(t, ok)
	require.Len(t, htc.Streams, 12)
	assert.Equal(t, StreamSpec{"AltOrientation_", "alt_orient", KindVector}, htc.Streams[0])
	assert.Equal(t, StreamSpec{"CameraParams_", "camera_params", KindCameraParams}, htc.Streams[11])
	spec, ok := htc.Spec("rot")
	require.True(t, ok)
	assert.Equal(t, KindMatrix, spec.Kind)

	rec, ok := LookupProfile(ProfileHTC1XRecording)
	require.True(t, ok)
	assert.Len(t, rec.Streams, 13)
	assert.Equal(t, "recording", rec.RecordingField)

	// lookups hand out copies
	htc.Streams[0].FieldName = "changed"
	again, _ := LookupProfile(ProfileHTC1X)
	assert.Equal(t, "alt_orient", again.Streams[0].FieldName)

	_, ok = LookupProfile("nexus")
	assert.False(t, ok)
}
