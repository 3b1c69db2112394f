package io

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// tsvComment starts a line that ReadTSV ignores.
const tsvComment = "%"

// tsvScanner yields lines with their 1-based line numbers, skipping comments.
type tsvScanner struct {
	s    *bufio.Scanner
	line int
}

func (t *tsvScanner) next() (string, bool) {
	for t.s.Scan() {
		t.line++
		text := strings.TrimRight(t.s.Text(), "\r\n")
		if strings.HasPrefix(text, tsvComment) {
			continue
		}
		return text, true
	}
	return "", false
}

func (t *tsvScanner) errorf(format string, args ...any) error {
	return errs.New(errs.ErrCodeInvalidInput, "line %d: %s", t.line, fmt.Sprintf(format, args...))
}

// ReadTSV decodes a tab-separated document. See the package documentation
// for the layout. It does not close r.
func ReadTSV(r io.Reader) (*Document, error) {
	t := &tsvScanner{s: bufio.NewScanner(r)}
	t.s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	doc := &Document{}

	for {
		text, ok := t.next()
		if !ok {
			if err := t.s.Err(); err != nil {
				return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read tsv")
			}
			return nil, errs.New(errs.ErrCodeInvalidInput, "unexpected end of input: missing axis lines")
		}
		if text == "" {
			break
		}
		ds, err := parseDimensionLine(t, text)
		if err != nil {
			return nil, err
		}
		doc.Dimensions = append(doc.Dimensions, ds)
	}

	h, ok := t.next()
	if !ok {
		return nil, errs.New(errs.ErrCodeInvalidInput, "unexpected end of input: missing horizontal dimensions")
	}
	v, ok := t.next()
	if !ok {
		return nil, errs.New(errs.ErrCodeInvalidInput, "unexpected end of input: missing vertical dimensions")
	}
	doc.Horizontal = splitNames(h)
	doc.Vertical = splitNames(v)

	for {
		text, ok := t.next()
		if !ok || text == "" {
			break
		}
		rs, err := parseRuleLine(t, text)
		if err != nil {
			return nil, err
		}
		doc.Rules = append(doc.Rules, rs)
	}
	if err := t.s.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read tsv")
	}
	return doc, nil
}

func parseDimensionLine(t *tsvScanner, text string) (DimensionSpec, error) {
	fields := strings.Split(text, "\t")
	ds := DimensionSpec{Name: fields[0]}
	pairs := fields[1:]
	if len(pairs)%2 != 0 {
		return ds, t.errorf("dimension %q: label %q has no style column", ds.Name, pairs[len(pairs)-1])
	}
	for i := 0; i < len(pairs); i += 2 {
		ds.Values = append(ds.Values, ValueSpec{Label: pairs[i], Style: pairs[i+1]})
	}
	return ds, nil
}

func parseRuleLine(t *tsvScanner, text string) (RuleSpec, error) {
	fields := strings.Split(text, "\t")
	rs := RuleSpec{Content: fields[0]}
	if len(fields) > 1 {
		rs.Style = fields[1]
	}
	if len(fields) <= 2 {
		return rs, nil
	}

	conds := fields[2:]
	if len(conds)%2 != 0 {
		return rs, t.errorf("rule %q: dimension %q has no index", rs.Content, conds[len(conds)-1])
	}
	rs.When = make(map[string]int, len(conds)/2)
	for i := 0; i < len(conds); i += 2 {
		idx, err := strconv.Atoi(conds[i+1])
		if err != nil {
			return rs, t.errorf("rule %q: index %q of dimension %q is not an integer", rs.Content, conds[i+1], conds[i])
		}
		if _, dup := rs.When[conds[i]]; dup {
			return rs, t.errorf("rule %q: dimension %q given twice", rs.Content, conds[i])
		}
		rs.When[conds[i]] = idx
	}
	return rs, nil
}

func splitNames(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\t")
}

// WriteTSV encodes doc in the tab-separated format. Rule conditions are
// written in dimension declaration order.
func WriteTSV(doc *Document, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, ds := range doc.Dimensions {
		fields := []string{ds.Name}
		for _, v := range ds.Values {
			fields = append(fields, v.Label, v.Style)
		}
		if err := writeFields(bw, fields); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	if err := writeFields(bw, doc.Horizontal); err != nil {
		return err
	}
	if err := writeFields(bw, doc.Vertical); err != nil {
		return err
	}

	order := doc.dimensionOrder()
	for _, rs := range doc.Rules {
		fields := []string{rs.Content, rs.Style}
		for _, d := range sortedKeys(rs.When, order) {
			fields = append(fields, d, strconv.Itoa(rs.When[d]))
		}
		if err := writeFields(bw, fields); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeFields writes one line. A leading comment marker is rejected, since
// ReadTSV would skip the whole line.
func writeFields(w *bufio.Writer, fields []string) error {
	if len(fields) > 0 && strings.HasPrefix(fields[0], tsvComment) {
		return errs.New(errs.ErrCodeInvalidInput,
			"%q cannot start a TSV line: lines beginning with %q are comments", fields[0], tsvComment)
	}
	for _, f := range fields {
		if strings.ContainsAny(f, "\t\r\n") {
			return errs.New(errs.ErrCodeInvalidInput, "field %q contains a tab or line break", f)
		}
	}
	_, err := w.WriteString(strings.Join(fields, "\t") + "\n")
	return err
}

// sortedKeys orders dimension names by declaration, unknown names last.
func sortedKeys(m map[string]int, order map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		ia, oka := order[a]
		ib, okb := order[b]
		switch {
		case oka && okb:
			return ia - ib
		case oka:
			return -1
		case okb:
			return 1
		}
		return strings.Compare(a, b)
	})
	return keys
}
