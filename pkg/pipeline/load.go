package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/hypercube/pkg/cache"
	errs "github.com/matzehuels/hypercube/pkg/errors"
	"github.com/matzehuels/hypercube/pkg/hypercube"
	pkgio "github.com/matzehuels/hypercube/pkg/io"
)

// Load validates doc into a cube and returns the content hash used in cache
// keys. The hash covers the canonical JSON encoding, so the same document
// read from TSV or YAML shares cache entries.
func Load(doc *pkgio.Document) (*hypercube.Cube, string, error) {
	if doc == nil {
		return nil, "", errs.New(errs.ErrCodeInvalidInput, "no document")
	}
	c, err := doc.Cube()
	if err != nil {
		return nil, "", err
	}
	canonical := pkgio.FromCube(c)
	data, err := json.Marshal(canonical)
	if err != nil {
		return nil, "", errs.Wrap(errs.ErrCodeInternal, err, "hash document")
	}
	return c, cache.Hash(data), nil
}
