package models

// AlignedRecord is every selected stream resampled at one instant.
// Values follow AlignedTable.Columns (after the timestamp column).
type AlignedRecord struct {
	TimestampNs int64     `json:"timestamp_ns"`
	Values      []float64 `json:"values"`
}

// CSVRow serialises the record; timestamps stay integral nanoseconds.
func (r *AlignedRecord) CSVRow() []string {
	row := make([]string, 0, len(r.Values)+1)
	row = append(row, itoa64(r.TimestampNs))
	for _, v := range r.Values {
		row = append(row, ftoa(v, 9))
	}
	return row
}

// AlignedTable is the output of resampling a session on a fixed grid.
type AlignedTable struct {
	Columns []string // excludes the leading timestamp_ns column
	Records []AlignedRecord
}

func (t *AlignedTable) CSVHeader() []string {
	return append([]string{"timestamp_ns"}, t.Columns...)
}
