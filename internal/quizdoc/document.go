package quizdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizform/internal/quizform"
)

// Version is the document version written by Encode.
const Version = "v1"

var (
	ErrUnknownFormat      = errors.New("unknown document format")
	ErrUnsupportedVersion = errors.New("unsupported document version")
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Document is the on-disk form of a quiz.
type Document struct {
	Version   string                  `json:"version" yaml:"version"`
	Title     string                  `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []quizform.QuestionData `json:"questions" yaml:"questions"`
}

// FromData wraps extracted quiz data in a current-version document.
func FromData(title string, d quizform.Data) *Document {
	return &Document{Version: Version, Title: title, Questions: d.Questions}
}

// Data returns the questions as plain quiz data.
func (d *Document) Data() quizform.Data {
	return quizform.Data{Questions: d.Questions}
}

// Decode reads a document, checks its shape and version. Bounds are not
// checked here; load the document into a quiz for that.
func Decode(r io.Reader, f Format) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var jsonBytes []byte
	switch f {
	case FormatJSON:
		jsonBytes = raw
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		if jsonBytes, err = json.Marshal(v); err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if err := checkShape(jsonBytes); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := checkVersion(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// checkVersion accepts any v1.x version and fills in Version when absent.
func checkVersion(doc *Document) error {
	if doc.Version == "" {
		doc.Version = Version
		return nil
	}
	if !semver.IsValid(doc.Version) || semver.Major(doc.Version) != semver.Major(Version) {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.Version)
	}
	return nil
}

// Encode writes doc in the given format.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = w.Write(append(out, '\n'))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// ReadFile decodes the document at path, picking the format from the
// extension.
func ReadFile(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(bytes.NewReader(raw), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteFile encodes doc to path, picking the format from the extension.
func WriteFile(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, f); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
