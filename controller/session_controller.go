package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"imu-load/models"
	"imu-load/services/ingest"
	"imu-load/utils"
)

const (
	videoPrefix       = "video-"
	videoSuffix       = ".mp4"
	metadataDirPrefix = "videodata_video-"
	streamFileSuffix  = ".txt"
)

// Session is every sensor stream recorded alongside one video. It is built
// once by LoadSession and never modified afterwards.
type Session struct {
	VideoPath   string
	ID          string
	MetadataDir string
	Profile     *models.RecorderProfile

	streams map[string]models.Stream
	order   []string
}

// StreamSummary is one row of Session.Summary.
type StreamSummary struct {
	Field     string
	Kind      models.AdapterKind
	Readings  int
	ElapsedNs int64
	Err       error
}

// ParseVideoFilename extracts the session id from a name like
// "video-17_Oct_2012_11-28-21_GMT.mp4". Prefix and suffix match
// case-insensitively.
func ParseVideoFilename(base string) (string, error) {
	lower := strings.ToLower(base)
	if !strings.HasPrefix(lower, videoPrefix) {
		return "", &models.NamingError{Name: base, Reason: "expected filename to start with " + videoPrefix}
	}
	if !strings.HasSuffix(lower, videoSuffix) {
		return "", &models.NamingError{Name: base, Reason: "expected filename to end with " + videoSuffix}
	}
	if len(base) <= len(videoPrefix)+len(videoSuffix) {
		return "", &models.NamingError{Name: base, Reason: "empty session id"}
	}
	return base[len(videoPrefix) : len(base)-len(videoSuffix)], nil
}

// MetadataDirFor returns the companion directory that sits next to the video.
func MetadataDirFor(videoDir, id string) string {
	return filepath.Join(videoDir, metadataDirPrefix+id)
}

// StreamPath is where a recorder writes the file for spec in a session.
func StreamPath(metadataDir, id string, spec models.StreamSpec) string {
	return filepath.Join(metadataDir, spec.FilePrefix+id+streamFileSuffix)
}

// LoadSession loads every stream profile declares for the video at
// videoPath, in declaration order. Any failure aborts the whole load.
func LoadSession(videoPath string, profile *models.RecorderProfile) (*Session, error) {
	log := utils.L().With("session")

	if profile == nil {
		return nil, fmt.Errorf("load session %s: no recorder profile", videoPath)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("load session %s: %w", videoPath, err)
	}

	abs, err := filepath.Abs(videoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", videoPath, err)
	}
	dir, base := filepath.Split(abs)
	id, err := ParseVideoFilename(base)
	if err != nil {
		return nil, err
	}

	s := &Session{
		VideoPath:   abs,
		ID:          id,
		MetadataDir: MetadataDirFor(dir, id),
		Profile:     profile,
		streams:     make(map[string]models.Stream, len(profile.Streams)),
		order:       make([]string, 0, len(profile.Streams)),
	}
	log.Debug("session id=%s metadata_dir=%s profile=%s", s.ID, s.MetadataDir, profile.Name)

	for _, spec := range profile.Streams {
		path := StreamPath(s.MetadataDir, id, spec)
		log.Debug("loading %s as %s from %s", spec.FieldName, spec.Kind, path)

		stream, err := ingest.Load(spec.Kind, path)
		if err != nil {
			return nil, fmt.Errorf("session %s: stream %s: %w", id, spec.FieldName, err)
		}
		s.streams[spec.FieldName] = stream
		s.order = append(s.order, spec.FieldName)
	}

	log.Info("loaded session %s (%d streams, profile=%s)", s.ID, len(s.order), profile.Name)
	return s, nil
}

// FieldNames lists the loaded streams in load order.
func (s *Session) FieldNames() []string {
	return append([]string(nil), s.order...)
}

// AllStreams returns the loaded streams in load order.
func (s *Session) AllStreams() []models.Stream {
	out := make([]models.Stream, len(s.order))
	for i, f := range s.order {
		out[i] = s.streams[f]
	}
	return out
}

// StreamNamed returns the stream stored under field.
func (s *Session) StreamNamed(field string) (models.Stream, error) {
	st, ok := s.streams[field]
	if !ok {
		return nil, &models.NotFoundError{Name: field}
	}
	return st, nil
}

// AllElapsedTimes returns TotalElapsedTime of every stream, in load order.
func (s *Session) AllElapsedTimes() ([]int64, error) {
	out := make([]int64, 0, len(s.order))
	for _, f := range s.order {
		el, err := s.streams[f].TotalElapsedTime()
		if err != nil {
			return nil, fmt.Errorf("stream %s: %w", f, err)
		}
		out = append(out, el)
	}
	return out, nil
}

// Summary reports size and elapsed time per stream without failing on
// degenerate streams.
func (s *Session) Summary() []StreamSummary {
	out := make([]StreamSummary, 0, len(s.order))
	for _, f := range s.order {
		st := s.streams[f]
		kind, _ := models.KindOf(st)
		el, err := st.TotalElapsedTime()
		out = append(out, StreamSummary{
			Field:     f,
			Kind:      kind,
			Readings:  st.NumReadings(),
			ElapsedNs: el,
			Err:       err,
		})
	}
	return out
}

// RotationMatrixAtTime interpolates the profile's rotation stream at t.
func (s *Session) RotationMatrixAtTime(t int64) (models.Matrix, error) {
	if s.Profile.RotationField == "" {
		return models.Matrix{}, fmt.Errorf("profile %s declares no rotation stream", s.Profile.Name)
	}
	m, err := s.Matrices(s.Profile.RotationField)
	if err != nil {
		return models.Matrix{}, err
	}
	return m.InterpolatedAt(t)
}

// Recording returns the profile's recording span, if it declares one.
func (s *Session) Recording() (*models.RecordingSpan, bool) {
	if s.Profile.RecordingField == "" {
		return nil, false
	}
	r, err := s.RecordingSpan(s.Profile.RecordingField)
	if err != nil {
		return nil, false
	}
	return r, true
}

// ─── typed accessors ────────────────────────────────────────────────────

func (s *Session) Vectors(field string) (*models.VectorSeries, error) {
	return streamAs[*models.VectorSeries](s, field, models.KindVector)
}

func (s *Session) Matrices(field string) (*models.MatrixSeries, error) {
	return streamAs[*models.MatrixSeries](s, field, models.KindMatrix)
}

func (s *Session) CameraParams(field string) (*models.CameraParamsLog, error) {
	return streamAs[*models.CameraParamsLog](s, field, models.KindCameraParams)
}

func (s *Session) RecordingSpan(field string) (*models.RecordingSpan, error) {
	return streamAs[*models.RecordingSpan](s, field, models.KindRecordingSpan)
}

func streamAs[T models.Stream](s *Session, field string, want models.AdapterKind) (T, error) {
	var zero T
	st, err := s.StreamNamed(field)
	if err != nil {
		return zero, err
	}
	typed, ok := st.(T)
	if !ok {
		got, _ := models.KindOf(st)
		return zero, fmt.Errorf("stream %s is %s, not %s", field, got, want)
	}
	return typed, nil
}
