package sink

import (
	"bytes"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	errs "github.com/matzehuels/hypercube/pkg/errors"
	"github.com/matzehuels/hypercube/pkg/render"
)

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	class    string
	document bool
}

// WithClass sets the class attribute of the table element (default "hypercube").
func WithClass(c string) HTMLOption { return func(r *htmlRenderer) { r.class = c } }

// WithDocument wraps the table in a minimal standalone HTML page.
func WithDocument() HTMLOption { return func(r *htmlRenderer) { r.document = true } }

const tableCSS = `table.hypercube { border-collapse: collapse; font-family: sans-serif; }
table.hypercube th, table.hypercube td { border: 1px solid #444; padding: 4px 8px; text-align: center; }
`

// RenderHTML writes the table as an HTML table. Header and corner cells
// become th elements, body rectangles td elements. Styles that [render.Color]
// understands become an inline background color; the raw style is kept in a
// data-style attribute either way.
func RenderHTML(t render.Table, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{class: "hypercube"}
	for _, opt := range opts {
		opt(&r)
	}

	table := element(atom.Table, html.Attribute{Key: "class", Val: r.class})
	tbody := element(atom.Tbody)
	table.AppendChild(tbody)

	for _, cells := range t.RowCells() {
		tr := element(atom.Tr)
		for _, c := range cells {
			tr.AppendChild(cellNode(c))
		}
		tbody.AppendChild(tr)
	}

	root := table
	if r.document {
		root = page(table)
	}

	var buf bytes.Buffer
	if r.document {
		buf.WriteString("<!DOCTYPE html>\n")
	}
	if err := html.Render(&buf, root); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render html")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func cellNode(c render.TableCell) *html.Node {
	tag := atom.Td
	if c.Kind.IsHeader() {
		tag = atom.Th
	}
	n := element(tag, html.Attribute{Key: "class", Val: c.Kind.String()})
	if c.RowSpan > 1 {
		n.Attr = append(n.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(c.RowSpan)})
	}
	if c.ColSpan > 1 {
		n.Attr = append(n.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(c.ColSpan)})
	}
	if c.Style != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "data-style", Val: c.Style})
		if hex, ok := render.Color(c.Style); ok {
			n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: "background-color: " + hex})
		}
	}
	if c.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text})
	}
	return n
}

func page(body *html.Node) *html.Node {
	doc := element(atom.Html)
	head := element(atom.Head)
	meta := element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"})
	style := element(atom.Style)
	style.AppendChild(&html.Node{Type: html.TextNode, Data: tableCSS})
	head.AppendChild(meta)
	head.AppendChild(style)

	b := element(atom.Body)
	b.AppendChild(body)
	doc.AppendChild(head)
	doc.AppendChild(b)
	return doc
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
