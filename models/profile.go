package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AdapterKind identifies the file schema of one sensor stream.
type AdapterKind int

const (
	KindVector AdapterKind = iota
	KindMatrix
	KindRecordingSpan
	KindCameraParams
)

var kindNames = map[AdapterKind]string{
	KindVector:        "vector",
	KindMatrix:        "matrix",
	KindRecordingSpan: "recording_span",
	KindCameraParams:  "camera_params",
}

func (k AdapterKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseAdapterKind is the inverse of String.
func ParseAdapterKind(s string) (AdapterKind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown adapter kind %q", s)
}

func (k AdapterKind) MarshalYAML() (interface{}, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown adapter kind %d", int(k))
	}
	return k.String(), nil
}

func (k *AdapterKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAdapterKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// StreamSpec says which file a recorder writes for one stream, what the
// session calls it, and how to parse it.
type StreamSpec struct {
	FilePrefix string      `yaml:"prefix"`
	FieldName  string      `yaml:"field"`
	Kind       AdapterKind `yaml:"kind"`
}

// RecorderProfile is the declarative file table of one recorder/device
// variant. Supporting a new device means adding a profile, not code.
type RecorderProfile struct {
	Name           string       `yaml:"name"`
	Description    string       `yaml:"description,omitempty"`
	RotationField  string       `yaml:"rotation_field,omitempty"`
	RecordingField string       `yaml:"recording_field,omitempty"`
	Streams        []StreamSpec `yaml:"streams"`
}

// Spec returns the stream declared under field.
func (p *RecorderProfile) Spec(field string) (StreamSpec, bool) {
	for _, s := range p.Streams {
		if s.FieldName == field {
			return s, true
		}
	}
	return StreamSpec{}, false
}

// Validate checks the table is loadable: named, non-empty, unique field
// names, known kinds, and convenience fields pointing at the right kind.
func (p *RecorderProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if len(p.Streams) == 0 {
		return fmt.Errorf("profile %s: no streams declared", p.Name)
	}
	seen := make(map[string]bool, len(p.Streams))
	for i, s := range p.Streams {
		if s.FilePrefix == "" {
			return fmt.Errorf("profile %s: stream %d has empty prefix", p.Name, i)
		}
		if s.FieldName == "" {
			return fmt.Errorf("profile %s: stream %d (%s) has empty field name", p.Name, i, s.FilePrefix)
		}
		if _, ok := kindNames[s.Kind]; !ok {
			return fmt.Errorf("profile %s: stream %s has unknown kind %d", p.Name, s.FieldName, int(s.Kind))
		}
		if seen[s.FieldName] {
			return fmt.Errorf("profile %s: duplicate field %s", p.Name, s.FieldName)
		}
		seen[s.FieldName] = true
	}
	if err := p.checkField(p.RotationField, KindMatrix, "rotation_field"); err != nil {
		return err
	}
	return p.checkField(p.RecordingField, KindRecordingSpan, "recording_field")
}

func (p *RecorderProfile) checkField(field string, want AdapterKind, what string) error {
	if field == "" {
		return nil
	}
	s, ok := p.Spec(field)
	if !ok {
		return fmt.Errorf("profile %s: %s %q is not a declared stream", p.Name, what, field)
	}
	if s.Kind != want {
		return fmt.Errorf("profile %s: %s %q is %s, want %s", p.Name, what, field, s.Kind, want)
	}
	return nil
}

// htc1xStreams is what the Java recorder writes on an HTC One X.
var htc1xStreams = []StreamSpec{
	{"AltOrientation_", "alt_orient", KindVector},
	{"AltOrientationFromRotationVector_", "alt_orient_rot_vec", KindVector},
	{"Panasonic_3-axis_Acceleration_sensor_", "pan_3_ax_acc", KindVector},
	{"Panasonic_3-axis_Magnetic_Field_sensor_", "pan_3_ax_mag", KindVector},
	{"Panasonic_Gravity_", "pan_grav", KindVector},
	{"Panasonic_Gyroscope_sensor_", "pan_gyro", KindVector},
	{"Panasonic_Linear_Acceleration_", "pan_acc", KindVector},
	{"Panasonic_Orientation_sensor_", "pan_orient", KindVector},
	{"Panasonic_Rotation_Vector_", "pan_rot_vec", KindVector},
	{"RotationMatrix_", "rot", KindMatrix},
	{"RotationMatrixFromRotationVector_", "rot_from_vec", KindMatrix},
	{"CameraParams_", "camera_params", KindCameraParams},
}

const (
	ProfileHTC1X          = "htc1x"
	ProfileHTC1XRecording = "htc1x-recording"
)

// BuiltinProfiles returns fresh copies of the compiled-in profiles.
func BuiltinProfiles() []*RecorderProfile {
	withSpan := append(append([]StreamSpec(nil), htc1xStreams...),
		StreamSpec{"RecordingTimes_", "recording", KindRecordingSpan})
	return []*RecorderProfile{
		{
			Name:          ProfileHTC1X,
			Description:   "HTC One X, Java IMU/video recorder",
			RotationField: "rot",
			Streams:       append([]StreamSpec(nil), htc1xStreams...),
		},
		{
			Name:           ProfileHTC1XRecording,
			Description:    "HTC One X with recording start/stop markers",
			RotationField:  "rot",
			RecordingField: "recording",
			Streams:        withSpan,
		},
	}
}

// LookupProfile finds a built-in profile by case-insensitive name.
func LookupProfile(name string) (*RecorderProfile, bool) {
	for _, p := range BuiltinProfiles() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}
