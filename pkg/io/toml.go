package io

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// ReadTOML decodes a TOML document from r. Keys that map to no field are
// reported as an error.
func ReadTOML(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidInput, "decode toml: unknown keys %s", strings.Join(keys, ", "))
	}
	return &doc, nil
}

// WriteTOML encodes doc as TOML. Dimensions and rules become arrays of
// tables.
func WriteTOML(doc *Document, w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode toml")
	}
	return nil
}
