package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
)

// CSVWriter is a buffered CSV writer over any io.Writer. It never closes the
// underlying writer; the caller owns it.
type CSVWriter struct {
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter wraps w and writes the header row if one is given.
func NewCSVWriter(w io.Writer, bufSizeBytes int, header []string) (*CSVWriter, error) {
	if bufSizeBytes <= 0 {
		bufSizeBytes = 256 * 1024 // 256 KB default
	}

	bw := bufio.NewWriterSize(w, bufSizeBytes)
	cw := &CSVWriter{buf: bw, csv: csv.NewWriter(bw)}

	if len(header) > 0 {
		if err := cw.csv.Write(header); err != nil {
			return nil, fmt.Errorf("csv write header: %w", err)
		}
	}
	return cw, nil
}

// WriteRow appends a single CSV row.
func (w *CSVWriter) WriteRow(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("csv write row %d: %w", w.rows+1, err)
	}
	w.rows++
	return nil
}

// Flush pushes everything buffered to the underlying writer.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return w.buf.Flush()
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 {
	return w.rows
}
