package ingest

import (
	"io"
	"strconv"
	"strings"

	"imu-load/models"
)

// ReadCameraParamsFile loads CameraParams_<id>.txt.
func ReadCameraParamsFile(path string) (*models.CameraParamsLog, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}
	return ParseCameraParams(readerFor(data), path)
}

// ParseCameraParams parses "timestamp::phoneId::k1=v1,v2;k2=v3" lines. Each
// line is an independent entry; within a line a repeated key keeps its last
// value.
func ParseCameraParams(r io.Reader, name string) (*models.CameraParamsLog, error) {
	lines, err := splitLines(r, name)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CameraParamsEntry, 0, len(lines))
	for _, l := range lines {
		parts := strings.Split(l.text, "::")
		if len(parts) != 3 {
			return nil, lineErr(name, l, "want timestamp::phoneId::params, got %d fields", len(parts))
		}
		ts, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, lineErr(name, l, "timestamp: %w", err)
		}

		attrs := make(map[string][]string)
		for _, group := range strings.Split(parts[2], ";") {
			if strings.TrimSpace(group) == "" {
				continue
			}
			kv := strings.Split(group, "=")
			if len(kv) != 2 {
				return nil, lineErr(name, l, "group %q: want key=value", group)
			}
			attrs[kv[0]] = strings.Split(kv[1], ",")
		}

		entries = append(entries, models.CameraParamsEntry{
			TimestampNs: ts,
			PhoneID:     parts[1],
			Attributes:  attrs,
		})
	}

	logger().Debug("parsed %s: %d camera parameter entries", name, len(entries))
	return &models.CameraParamsLog{Entries: entries}, nil
}
