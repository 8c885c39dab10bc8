package controller

import (
	"fmt"

	"imu-load/models"
	"imu-load/utils"
	"imu-load/views"
)

// AlignmentController resamples a session's numeric streams onto one fixed
// time grid, so independently sampled sensors can be read row by row.
//
// The grid covers the window every selected stream can answer for (the
// intersection of their time ranges), optionally clipped to the session's
// recording span. Every column comes from InterpolatedAt.
type AlignmentController struct {
	stepNs          int64
	fields          []string
	clipToRecording bool
}

// NewAlignmentController creates an alignment stage. With no fields, every
// vector and matrix stream of the session is used.
func NewAlignmentController(stepNs int64, fields []string, clipToRecording bool) *AlignmentController {
	return &AlignmentController{
		stepNs:          stepNs,
		fields:          append([]string(nil), fields...),
		clipToRecording: clipToRecording,
	}
}

// column sources one stream's values at a timestamp.
type column struct {
	field  string
	names  []string
	bounds func() (int64, int64, error)
	at     func(t int64) ([]float64, error)
}

// Align builds the aligned table for s.
func (ac *AlignmentController) Align(s *Session) (*models.AlignedTable, error) {
	log := utils.L().With("align")

	if ac.stepNs <= 0 {
		return nil, fmt.Errorf("align: step must be positive, got %dns", ac.stepNs)
	}
	cols, err := ac.columns(s)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("align: session %s has no vector or matrix streams", s.ID)
	}

	start, end, err := ac.window(s, cols)
	if err != nil {
		return nil, err
	}

	table := &models.AlignedTable{}
	for _, c := range cols {
		table.Columns = append(table.Columns, c.names...)
	}

	for t := start; ; t += ac.stepNs {
		rec := models.AlignedRecord{TimestampNs: t, Values: make([]float64, 0, len(table.Columns))}
		for _, c := range cols {
			vals, err := c.at(t)
			if err != nil {
				return nil, fmt.Errorf("align: %s at %d: %w", c.field, t, err)
			}
			rec.Values = append(rec.Values, vals...)
		}
		table.Records = append(table.Records, rec)
		// compare before stepping so t+step cannot overflow
		if t > end-ac.stepNs {
			break
		}
	}

	log.Info("aligned session %s: %d rows × %d columns, window [%s, %s]",
		s.ID, len(table.Records), len(table.Columns),
		utils.FormatTimestamp(start), utils.FormatTimestamp(end))
	return table, nil
}

func (ac *AlignmentController) columns(s *Session) ([]column, error) {
	fields := ac.fields
	explicit := len(fields) > 0
	if !explicit {
		fields = s.FieldNames()
	}

	var cols []column
	for _, f := range fields {
		st, err := s.StreamNamed(f)
		if err != nil {
			return nil, fmt.Errorf("align: %w", err)
		}
		switch v := st.(type) {
		case *models.VectorSeries:
			width := 0
			if first, err := v.ReadingAt(0); err == nil {
				width = len(first)
			}
			cols = append(cols, column{
				field:  f,
				names:  views.VectorColumns(f, width),
				bounds: v.Bounds,
				at: func(t int64) ([]float64, error) {
					r, err := v.InterpolatedAt(t)
					return r, err
				},
			})
		case *models.MatrixSeries:
			cols = append(cols, column{
				field:  f,
				names:  views.MatrixColumns(f),
				bounds: v.Bounds,
				at: func(t int64) ([]float64, error) {
					r, err := v.InterpolatedAt(t)
					if err != nil {
						return nil, err
					}
					return r.RowMajor(), nil
				},
			})
		default:
			if explicit {
				kind, _ := models.KindOf(st)
				return nil, fmt.Errorf("align: stream %s is %s and cannot be interpolated", f, kind)
			}
		}
	}
	return cols, nil
}

func (ac *AlignmentController) window(s *Session, cols []column) (int64, int64, error) {
	var start, end int64
	for i, c := range cols {
		first, last, err := c.bounds()
		if err != nil {
			return 0, 0, fmt.Errorf("align: stream %s: %w", c.field, err)
		}
		if i == 0 || first > start {
			start = first
		}
		if i == 0 || last < end {
			end = last
		}
	}

	if ac.clipToRecording {
		span, ok := s.Recording()
		if !ok {
			return 0, 0, fmt.Errorf("align: session %s has no recording span to clip to", s.ID)
		}
		start = max(start, span.Start.TimestampNs)
		end = min(end, span.Stop.TimestampNs)
	}

	if start > end {
		return 0, 0, fmt.Errorf("align: streams of session %s do not overlap in time", s.ID)
	}
	return start, end, nil
}
