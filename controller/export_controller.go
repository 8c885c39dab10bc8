package controller

import (
	"fmt"
	"io"

	"imu-load/models"
	"imu-load/utils"
	"imu-load/views"
)

// ExportController writes session data as CSV to a caller-owned writer.
type ExportController struct {
	bufSize int
}

// NewExportController creates an exporter; bufSizeKB <= 0 uses the default.
func NewExportController(bufSizeKB int) *ExportController {
	return &ExportController{bufSize: bufSizeKB * 1024}
}

// ExportAligned writes an aligned table, one row per grid timestamp.
func (ec *ExportController) ExportAligned(w io.Writer, table *models.AlignedTable) (uint64, error) {
	cw, err := views.NewCSVWriter(w, ec.bufSize, table.CSVHeader())
	if err != nil {
		return 0, err
	}
	for i := range table.Records {
		if err := cw.WriteRow(table.Records[i].CSVRow()); err != nil {
			return cw.Rows(), err
		}
	}
	if err := cw.Flush(); err != nil {
		return cw.Rows(), err
	}
	utils.L().With("export").Debug("wrote %d aligned rows", cw.Rows())
	return cw.Rows(), nil
}

// ExportStream dumps one vector or matrix stream of s, reading by reading.
func (ec *ExportController) ExportStream(w io.Writer, s *Session, field string) (uint64, error) {
	st, err := s.StreamNamed(field)
	if err != nil {
		return 0, err
	}

	var (
		n      int
		width  int
		kind   models.AdapterKind
		values func(i int) ([]float64, error)
		stamp  func(i int) (int64, error)
	)
	switch v := st.(type) {
	case *models.VectorSeries:
		kind, n, stamp = models.KindVector, v.NumReadings(), v.TimestampAt
		values = func(i int) ([]float64, error) { return v.ReadingAt(i) }
		if first, err := v.ReadingAt(0); err == nil {
			width = len(first)
		}
	case *models.MatrixSeries:
		kind, n, stamp = models.KindMatrix, v.NumReadings(), v.TimestampAt
		values = func(i int) ([]float64, error) {
			m, err := v.ReadingAt(i)
			if err != nil {
				return nil, err
			}
			return m.RowMajor(), nil
		}
	default:
		kind, _ = models.KindOf(st)
	}

	header, err := views.StreamHeader(field, kind, width)
	if err != nil {
		return 0, err
	}
	cw, err := views.NewCSVWriter(w, ec.bufSize, header)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		ts, err := stamp(i)
		if err != nil {
			return cw.Rows(), err
		}
		vals, err := values(i)
		if err != nil {
			return cw.Rows(), err
		}
		if err := cw.WriteRow(models.ReadingRow(ts, vals)); err != nil {
			return cw.Rows(), fmt.Errorf("export %s: %w", field, err)
		}
	}
	if err := cw.Flush(); err != nil {
		return cw.Rows(), err
	}
	return cw.Rows(), nil
}
