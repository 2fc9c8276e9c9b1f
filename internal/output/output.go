// Package output serializes manifest records as JSON, as a JS global
// assignment or as an m3u playlist.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrclmr/a2m/internal/manifest"
)

// Target is one manifest file to produce.
type Target struct {
	Format Format
	Path   string
	// Global is the assigned name for JS, e.g. window.AUDIO_MANIFEST.
	Global string
}

// Encode returns the file content for records.
// JSON is indented by two spaces and keeps non-ASCII, '<', '>' and '&' literal.
// JS is "<global> = " followed by the same JSON and ";".
func (t Target) Encode(records []manifest.Record) ([]byte, error) {
	if records == nil {
		records = []manifest.Record{}
	}
	if t.Format == M3U {
		return encodeM3U(records), nil
	}

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(records)
	if err != nil {
		return nil, err
	}

	switch t.Format {
	case JSON:
		return buf.Bytes(), nil
	case JS:
		if t.Global == "" {
			return nil, fmt.Errorf("%s: js output needs a global name", t.Path)
		}
		out := make([]byte, 0, buf.Len()+len(t.Global)+5)
		out = append(out, jsHeader(t.Global)...)
		out = append(out, bytes.TrimSuffix(buf.Bytes(), []byte("\n"))...)
		out = append(out, ";\n"...)
		return out, nil
	default:
		return nil, fmt.Errorf("%s: unsupported output format %v", t.Path, t.Format)
	}
}

// Decode parses content produced by Encode. m3u playlists lack the
// category and language and cannot be decoded.
func (t Target) Decode(content []byte) ([]manifest.Record, error) {
	data := content
	switch t.Format {
	case JSON:
	case JS:
		data = bytes.TrimSpace(data)
		header := []byte(jsHeader(t.Global))
		if !bytes.HasPrefix(data, header) {
			return nil, fmt.Errorf("%s: missing '%s' assignment", t.Path, t.Global)
		}
		data = bytes.TrimPrefix(data, header)
		if !bytes.HasSuffix(data, []byte(";")) {
			return nil, fmt.Errorf("%s: missing ';' after assignment", t.Path)
		}
		data = bytes.TrimSuffix(data, []byte(";"))
	default:
		return nil, fmt.Errorf("%s: unsupported output format %v", t.Path, t.Format)
	}

	var records []manifest.Record
	err := json.Unmarshal(data, &records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Path, err)
	}
	return records, nil
}

// WriteFile replaces the file at t.Path with content and creates missing parent directories.
func (t Target) WriteFile(content []byte) error {
	if err := mkdirAllIfNotExists(filepath.Dir(t.Path)); err != nil {
		return err
	}
	return os.WriteFile(t.Path, content, 0o644)
}

func jsHeader(global string) string {
	return global + " = "
}

func mkdirAllIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModePerm)
	}
	return nil
}
