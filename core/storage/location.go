package storage

import (
	"fmt"
	"strings"
)

// Kind tells where a location points.
type Kind string

const (
	// KindFile is a path on the local disk.
	KindFile Kind = "file"
	// KindObject is an object in a bucket.
	KindObject Kind = "object"
	// KindTable is a SQL table.
	KindTable Kind = "table"
)

const (
	objectScheme = "s3://"
	tableScheme  = "db://"
)

// Location is a parsed input or output address.
type Location struct {
	Kind   Kind
	Path   string
	Bucket string
	Key    string
	Table  string
}

// ParseLocation parses "s3://bucket/key", "db://table" or a plain file path.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, fmt.Errorf("empty location")
	}

	switch {
	case strings.HasPrefix(raw, objectScheme):
		rest := strings.TrimPrefix(raw, objectScheme)
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return Location{}, fmt.Errorf("invalid object location %q: expected s3://bucket/key", raw)
		}
		return Location{Kind: KindObject, Bucket: bucket, Key: key}, nil
	case strings.HasPrefix(raw, tableScheme):
		name := strings.TrimPrefix(raw, tableScheme)
		if name == "" || strings.Contains(name, "/") {
			return Location{}, fmt.Errorf("invalid table location %q: expected db://table", raw)
		}
		return Location{Kind: KindTable, Table: name}, nil
	default:
		return Location{Kind: KindFile, Path: raw}, nil
	}
}

// String renders the location in the form ParseLocation accepts.
func (l Location) String() string {
	switch l.Kind {
	case KindObject:
		return objectScheme + l.Bucket + "/" + l.Key
	case KindTable:
		return tableScheme + l.Table
	default:
		return l.Path
	}
}

// NeedsClient reports whether any of the locations is in object storage.
func NeedsClient(locations ...Location) bool {
	for _, l := range locations {
		if l.Kind == KindObject {
			return true
		}
	}
	return false
}
