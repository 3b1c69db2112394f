package io

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

const sampleTSV = "% shirt availability\n" +
	"size\tS\tred!20\tM\t\tL\tblue!20\n" +
	"color\tred\t\tblue\t\n" +
	"\n" +
	"size\tcolor\n" +
	"\n" +
	"sold out\tgray!30\tsize\t2\tcolor\t0\n" +
	"% everything else\n" +
	"open\t\n"

func TestReadTSV(t *testing.T) {
	doc, err := ReadTSV(strings.NewReader(sampleTSV))
	if err != nil {
		t.Fatalf("ReadTSV: %v", err)
	}

	want := &Document{
		Dimensions: []DimensionSpec{
			{Name: "size", Values: []ValueSpec{{"S", "red!20"}, {"M", ""}, {"L", "blue!20"}}},
			{Name: "color", Values: []ValueSpec{{"red", ""}, {"blue", ""}}},
		},
		Horizontal: []string{"size", "color"},
		Rules: []RuleSpec{
			{Content: "sold out", Style: "gray!30", When: map[string]int{"size": 2, "color": 0}},
			{Content: "open"},
		},
	}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("ReadTSV =\n%+v\nwant\n%+v", doc, want)
	}

	c, err := doc.Cube()
	if err != nil {
		t.Fatalf("Cube: %v", err)
	}
	if c.Width() != 6 || c.Height() != 1 {
		t.Errorf("size = %dx%d, want 6x1", c.Width(), c.Height())
	}
}

func TestReadTSVRulesEndAtBlankLine(t *testing.T) {
	in := "A\ta0\t\ta1\t\n\nA\n\nx\t\tA\t0\n\nignored\n"
	doc, err := ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTSV: %v", err)
	}
	if len(doc.Rules) != 1 {
		t.Errorf("got %d rules, want 1", len(doc.Rules))
	}
}

func TestReadTSVCRLF(t *testing.T) {
	in := strings.ReplaceAll(sampleTSV, "\n", "\r\n")
	doc, err := ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTSV: %v", err)
	}
	if got := doc.Rules[1].Content; got != "open" {
		t.Errorf("last rule = %q, want %q", got, "open")
	}
}

func TestReadTSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"odd dimension pairs", "A\ta0\t\ta1\n\nA\n\n", "line 1"},
		{"odd rule pairs", "A\ta0\t\n\nA\n\nx\t\tA\n", "line 5"},
		{"non-integer index", "A\ta0\t\n\nA\n\nx\t\tA\tfirst\n", "not an integer"},
		{"repeated condition", "A\ta0\t\n\nA\n\nx\t\tA\t0\tA\t0\n", "given twice"},
		{"missing axes", "A\ta0\t\n", "missing axis lines"},
		{"missing vertical", "A\ta0\t\n\nA\n", "missing vertical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTSV(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("code = %s, want %s", errs.GetCode(err), errs.ErrCodeInvalidInput)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestWriteTSVRoundTrip(t *testing.T) {
	doc, err := ReadTSV(strings.NewReader(sampleTSV))
	if err != nil {
		t.Fatalf("ReadTSV: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteTSV(doc, &buf); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}
	if !strings.Contains(buf.String(), "sold out\tgray!30\tsize\t2\tcolor\t0\n") {
		t.Errorf("conditions not in declaration order:\n%s", buf.String())
	}

	back, err := ReadTSV(&buf)
	if err != nil {
		t.Fatalf("ReadTSV(WriteTSV): %v", err)
	}
	if !reflect.DeepEqual(back, doc) {
		t.Errorf("round trip =\n%+v\nwant\n%+v", back, doc)
	}
}

func TestWriteTSVRejectsUnreadableFields(t *testing.T) {
	size := DimensionSpec{Name: "size", Values: []ValueSpec{{Label: "S"}, {Label: "M"}}}
	tests := []struct {
		name string
		doc  *Document
	}{
		{"tab in content", &Document{Rules: []RuleSpec{{Content: "a\tb"}}}},
		{"line break in label", &Document{Dimensions: []DimensionSpec{{Name: "size", Values: []ValueSpec{{Label: "S\r\n"}}}}}},
		{"comment marker starts rule", &Document{
			Dimensions: []DimensionSpec{size},
			Horizontal: []string{"size"},
			Rules:      []RuleSpec{{Content: "%50 off", When: map[string]int{"size": 0}}, {Content: "full price"}},
		}},
		{"comment marker starts dimension", &Document{Dimensions: []DimensionSpec{{Name: "%share", Values: []ValueSpec{{Label: "x"}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteTSV(tt.doc, &bytes.Buffer{})
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("WriteTSV() = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestWriteTSVKeepsInnerPercent(t *testing.T) {
	doc := &Document{
		Dimensions: []DimensionSpec{{Name: "size", Values: []ValueSpec{{Label: "S"}, {Label: "M"}}}},
		Horizontal: []string{"size"},
		Rules: []RuleSpec{
			{Content: "50% off", When: map[string]int{"size": 0}},
			{Content: "full price"},
		},
	}
	var buf bytes.Buffer
	if err := WriteTSV(doc, &buf); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}
	back, err := ReadTSV(&buf)
	if err != nil {
		t.Fatalf("ReadTSV: %v", err)
	}
	if len(back.Rules) != 2 || back.Rules[0].Content != "50% off" {
		t.Errorf("rules after round trip = %+v, want both rules", back.Rules)
	}
}
