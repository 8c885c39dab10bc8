package ingest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"imu-load/models"
	"imu-load/utils"
)

func logger() *utils.Logger { return utils.L().With("ingest") }

// maxLineBytes caps one record; camera parameter lines can be long.
const maxLineBytes = 1 << 20

// line is one non-blank record and its 1-based position in the file.
type line struct {
	num  int
	text string
}

// readAll reads the whole file and closes it before any parsing happens.
func readAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.ParseError{File: path, Err: err}
	}
	return data, nil
}

// splitLines returns every non-blank line, CR-stripped, in file order.
func splitLines(r io.Reader, name string) ([]line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []line
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, line{num: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, &models.ParseError{File: name, Line: n + 1, Err: err}
	}
	return out, nil
}

// splitFields splits a comma-separated record, trims each field and drops
// the empty field left by a trailing separator.
func splitFields(text string) []string {
	fields := strings.Split(text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if n := len(fields); n > 0 && fields[n-1] == "" {
		fields = fields[:n-1]
	}
	return fields
}

func lineErr(name string, l line, format string, args ...any) error {
	return &models.ParseError{File: name, Line: l.num, Err: fmt.Errorf(format, args...)}
}

func readerFor(data []byte) io.Reader { return bytes.NewReader(data) }
