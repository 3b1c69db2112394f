package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	errs "github.com/matzehuels/hypercube/pkg/errors"
	pkgio "github.com/matzehuels/hypercube/pkg/io"
)

const scenarioTSV = "% two rules over a 4x1 grid\n" +
	"A\ta0\tred!20\ta1\t\n" +
	"B\tb0\t\tb1\t\n" +
	"C\tc0\t\n" +
	"\n" +
	"A\tB\n" +
	"C\n" +
	"X\tgreen!10\tA\t0\n" +
	"Y\t\n"

// writeScenario writes the scenario document into a fresh directory and
// points the cache at another one.
func writeScenario(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "scenario.tsv")
	if err := os.WriteFile(path, []byte(scenarioTSV), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"tex"}},
		{"svg", []string{"svg"}},
		{"tex,html,json", []string{"tex", "html", "json"}},
		{" PDF , png,", []string{"pdf", "png"}},
	}

	for _, tt := range tests {
		if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		input   string
		formats []string
		want    map[string]string
	}{
		{"derived from input", "", "doc.tsv", []string{"tex", "html"},
			map[string]string{"tex": "doc.tex", "html": "doc.html"}},
		{"explicit single file", "out/table.txt", "doc.tsv", []string{"tex"},
			map[string]string{"tex": "out/table.txt"}},
		{"base path strips format extension", "out/t.svg", "doc.tsv", []string{"svg", "pdf"},
			map[string]string{"svg": "out/t.svg", "pdf": "out/t.pdf"}},
		{"base path without extension", "out/t", "doc.tsv", []string{"png"},
			map[string]string{"png": "out/t.png"}},
		{"never overwrites the input", "", "doc.json", []string{"json", "tex"},
			map[string]string{"json": "doc.table.json", "tex": "doc.tex"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPaths(tt.output, tt.input, tt.formats); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("outputPaths(%q, %q, %v) = %v, want %v", tt.output, tt.input, tt.formats, got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	input := writeScenario(t)
	base := strings.TrimSuffix(input, ".tsv")

	if _, err := execute(t, "render", input, "-f", "tex,html,json,dot"); err != nil {
		t.Fatalf("render: %v", err)
	}

	checks := map[string]string{
		base + ".tex":  `\Block{1-2}{X}`,
		base + ".html": "<table",
		base + ".json": `"content": "Y"`,
		base + ".dot":  "digraph",
	}
	for path, want := range checks {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("read %s: %v", path, err)
			continue
		}
		if !strings.Contains(string(data), want) {
			t.Errorf("%s does not contain %q", filepath.Base(path), want)
		}
	}
}

func TestRenderCommandStrategies(t *testing.T) {
	input := writeScenario(t)

	for _, args := range [][]string{
		{"--strategy", "guillotine", "--verify"},
		{"--merge", "rule", "--no-cache"},
		{"--refresh"},
	} {
		out := filepath.Join(t.TempDir(), "table.tex")
		argv := append([]string{"render", input, "-o", out}, args...)
		if _, err := execute(t, argv...); err != nil {
			t.Errorf("render %v: %v", args, err)
			continue
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("render %v did not write %s: %v", args, out, err)
		}
	}
}

func TestRenderCommandErrors(t *testing.T) {
	input := writeScenario(t)

	tests := []struct {
		name string
		args []string
		code errs.Code
	}{
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "missing.tsv")}, errs.ErrCodeFileNotFound},
		{"unknown format", []string{"render", input, "-f", "docx"}, errs.ErrCodeInvalidFormat},
		{"unknown strategy", []string{"render", input, "--strategy", "random"}, errs.ErrCodeInvalidStrategy},
		{"unknown extension", []string{"render", "doc.xml"}, errs.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestConvertCommand(t *testing.T) {
	input := writeScenario(t)
	want, err := pkgio.Import(input)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	for _, ext := range []string{"json", "yaml", "toml"} {
		out := filepath.Join(t.TempDir(), "scenario."+ext)
		if _, err := execute(t, "convert", input, "-o", out, "--check"); err != nil {
			t.Fatalf("convert to %s: %v", ext, err)
		}
		got, err := pkgio.Import(out)
		if err != nil {
			t.Fatalf("Import(%s): %v", ext, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s round trip = %+v, want %+v", ext, got, want)
		}
	}
}

func TestConvertCommandRequiresOutput(t *testing.T) {
	input := writeScenario(t)
	if _, err := execute(t, "convert", input); err == nil {
		t.Error("convert without -o should fail")
	}
}

func TestCacheCommands(t *testing.T) {
	input := writeScenario(t)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	dir := strings.TrimSpace(out)
	if filepath.Base(dir) != appName {
		t.Errorf("cache path = %q, want it to end in %q", dir, appName)
	}

	if _, err := execute(t, "render", input, "-o", filepath.Join(t.TempDir(), "x.tex")); err != nil {
		t.Fatalf("render: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) == 0 {
		t.Fatal("render left the cache empty")
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	entries, _ = os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache still holds %d entries after clear", len(entries))
	}

	// Clearing an empty or missing cache is not an error.
	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Errorf("second cache clear: %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := execute(t, "completion", shell)
		if err != nil {
			t.Errorf("completion %s: %v", shell, err)
			continue
		}
		if !strings.Contains(out, appName) {
			t.Errorf("completion %s output does not mention %q", shell, appName)
		}
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}

func TestDocumentExtensions(t *testing.T) {
	got := documentExtensions()
	for _, want := range []string{"tsv", "json", "yaml", "yml", "toml"} {
		found := false
		for _, g := range got {
			found = found || g == want
		}
		if !found {
			t.Errorf("documentExtensions() = %v, missing %q", got, want)
		}
	}
}
