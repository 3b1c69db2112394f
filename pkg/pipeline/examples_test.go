package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	pkgio "github.com/matzehuels/hypercube/pkg/io"
)

// TestExampleDocuments runs every document under examples/ through both
// strategies with verification on.
func TestExampleDocuments(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(paths) == 0 {
		t.Skip("no example documents")
	}

	r := NewRunner(nil, nil, nil)
	for _, path := range paths {
		doc, err := pkgio.Import(path)
		if err != nil {
			t.Errorf("Import(%s): %v", path, err)
			continue
		}
		for _, strategy := range []string{"greedy", "guillotine"} {
			res, err := r.Execute(context.Background(), doc, Options{
				Strategy: strategy,
				Verify:   true,
				Formats:  []string{FormatTeX, FormatHTML, FormatJSON},
			})
			if err != nil {
				t.Errorf("%s/%s: %v", filepath.Base(path), strategy, err)
				continue
			}
			if res.Stats.Rectangles == 0 {
				t.Errorf("%s/%s: no rectangles", filepath.Base(path), strategy)
			}
		}
	}
}
