package io

import (
	"encoding/json"
	"io"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// ReadJSON decodes a JSON document from r. Unknown fields are rejected so
// that a misspelled key does not silently drop a rule condition.
func ReadJSON(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode json")
	}
	return &doc, nil
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode json")
	}
	return nil
}
