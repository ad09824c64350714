package schema

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source identifies where a platform model document originated and how
// to read it, so loaders can operate on files or in-memory payloads
// without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
	Read() ([]byte, error)
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindBytes SourceKind = "bytes"
)

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

func (s fileSource) Read() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", s.path, err)
	}
	return raw, nil
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// bytesSource carries an in-memory document, labelled for error
// messages.
type bytesSource struct {
	name string
	raw  []byte
}

func (s bytesSource) Location() string {
	return s.name
}

func (s bytesSource) Kind() SourceKind {
	return SourceKindBytes
}

func (s bytesSource) Read() ([]byte, error) {
	return append([]byte(nil), s.raw...), nil
}

// SourceFromBytes returns a Source wrapping an in-memory document.
func SourceFromBytes(name string, raw []byte) Source {
	return bytesSource{name: name, raw: raw}
}
