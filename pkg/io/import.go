package io

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// Format identifies a document encoding.
type Format string

const (
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported document format.
var Formats = []Format{FormatTSV, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat parses a format name. It accepts "yml" as an alias and
// ignores case and a leading dot, so file extensions parse directly.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "tsv":
		return FormatTSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown document format %q (must be tsv, json, yaml or toml)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errs.New(errs.ErrCodeInvalidFormat, "%s: no file extension to infer the document format from", path)
	}
	return ParseFormat(ext)
}

// Read decodes a document in the given format from r.
func Read(r io.Reader, f Format) (*Document, error) {
	switch f {
	case FormatTSV:
		return ReadTSV(r)
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatTOML:
		return ReadTOML(r)
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown document format %q", f)
}

// Write encodes doc in the given format to w.
func Write(doc *Document, w io.Writer, f Format) error {
	switch f {
	case FormatTSV:
		return WriteTSV(doc, w)
	case FormatJSON:
		return WriteJSON(doc, w)
	case FormatYAML:
		return WriteYAML(doc, w)
	case FormatTOML:
		return WriteTOML(doc, w)
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unknown document format %q", f)
}

// Decode decodes an in-memory document.
func Decode(data []byte, f Format) (*Document, error) {
	return Read(bytes.NewReader(data), f)
}

// Import reads the document at path, choosing the format by extension.
func Import(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer file.Close()

	doc, err := Read(file, f)
	if err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "%s", path)
	}
	return doc, nil
}

// Export writes doc to path, choosing the format by extension.
func Export(doc *Document, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(doc, &buf, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
