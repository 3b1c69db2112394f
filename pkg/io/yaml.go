package io

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// ReadYAML decodes a YAML document from r. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errs.New(errs.ErrCodeInvalidInput, "decode yaml: empty document")
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode yaml")
	}
	return &doc, nil
}

// WriteYAML encodes doc as YAML with two-space indentation.
func WriteYAML(doc *Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode yaml")
	}
	return nil
}
