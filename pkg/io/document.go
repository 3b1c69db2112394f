package io

import (
	"github.com/matzehuels/hypercube/pkg/hypercube"
)

// Document is the serializable form of a cube.
type Document struct {
	Dimensions []DimensionSpec `json:"dimensions" yaml:"dimensions" toml:"dimensions"`
	Horizontal []string        `json:"horizontal" yaml:"horizontal" toml:"horizontal"`
	Vertical   []string        `json:"vertical" yaml:"vertical" toml:"vertical"`
	Rules      []RuleSpec      `json:"rules" yaml:"rules" toml:"rules"`
}

// DimensionSpec declares one dimension and its ordered values.
type DimensionSpec struct {
	Name   string      `json:"name" yaml:"name" toml:"name"`
	Values []ValueSpec `json:"values" yaml:"values" toml:"values"`
}

// ValueSpec is one value of a dimension. Style colors its header cell.
type ValueSpec struct {
	Label string `json:"label" yaml:"label" toml:"label"`
	Style string `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
}

// RuleSpec fills every cell whose coordinate matches When with Content.
// An empty When matches every cell.
type RuleSpec struct {
	Content string         `json:"content" yaml:"content" toml:"content"`
	Style   string         `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	When    map[string]int `json:"when,omitempty" yaml:"when,omitempty" toml:"when,omitempty"`
}

// Cube converts the document and validates it.
func (d *Document) Cube() (*hypercube.Cube, error) {
	dims := make([]hypercube.Dimension, len(d.Dimensions))
	for i, ds := range d.Dimensions {
		values := make([]hypercube.Value, len(ds.Values))
		for j, v := range ds.Values {
			values[j] = hypercube.Value{Label: v.Label, Style: v.Style}
		}
		dims[i] = hypercube.Dimension{Name: ds.Name, Values: values}
	}

	rules := make([]hypercube.Rule, len(d.Rules))
	for i, r := range d.Rules {
		rules[i] = hypercube.Rule{
			Domain:  hypercube.Coordinate(r.When),
			Payload: hypercube.Payload{Content: r.Content, Style: r.Style},
		}
	}

	return hypercube.New(dims, hypercube.Axes{Horizontal: d.Horizontal, Vertical: d.Vertical}, rules)
}

// FromCube returns the document describing c.
func FromCube(c *hypercube.Cube) Document {
	var doc Document
	for _, d := range c.Dimensions() {
		ds := DimensionSpec{Name: d.Name, Values: make([]ValueSpec, len(d.Values))}
		for j, v := range d.Values {
			ds.Values[j] = ValueSpec{Label: v.Label, Style: v.Style}
		}
		doc.Dimensions = append(doc.Dimensions, ds)
	}
	axes := c.Axes()
	doc.Horizontal = axes.Horizontal
	doc.Vertical = axes.Vertical
	for _, r := range c.Rules() {
		spec := RuleSpec{Content: r.Payload.Content, Style: r.Payload.Style}
		if len(r.Domain) > 0 {
			spec.When = map[string]int(r.Domain.Clone())
		}
		doc.Rules = append(doc.Rules, spec)
	}
	return doc
}

// dimensionOrder returns each dimension's declaration position.
func (d *Document) dimensionOrder() map[string]int {
	order := make(map[string]int, len(d.Dimensions))
	for i, ds := range d.Dimensions {
		order[ds.Name] = i
	}
	return order
}
