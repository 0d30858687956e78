package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/molviz/molviz/pkg/mol"
)

// ToDOT converts a molecule to Graphviz DOT format for an abstract
// connectivity view: atoms as labeled circles, bonds as edges styled
// by order. Unlike the skeletal renderer this view ignores computed
// coordinates and lets Graphviz pick the embedding, which is useful
// for inspecting what the parser actually built.
func ToDOT(m *mol.Molecule) string {
	var buf bytes.Buffer
	buf.WriteString("graph molecule {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i := range m.Atoms {
		fmt.Fprintf(&buf, "  a%d [label=%q];\n", i, dotLabel(m, i))
	}

	buf.WriteString("\n")
	for i := range m.Bonds {
		b := &m.Bonds[i]
		fmt.Fprintf(&buf, "  a%d -- a%d [%s];\n", b.A, b.B, dotEdgeAttrs(b))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotLabel is the full (non-skeletal) atom label: isotope, element,
// and charge. Carbons are labeled too; the connectivity view hides
// nothing.
func dotLabel(m *mol.Molecule, i int) string {
	a := &m.Atoms[i]
	label := a.Element
	if a.Isotope > 0 {
		label = fmt.Sprintf("%d%s", a.Isotope, a.Element)
	}
	if a.Charge != 0 {
		label += chargeSuffix(a.Charge)
	}
	return label
}

func dotEdgeAttrs(b *mol.Bond) string {
	switch {
	case b.Aromatic:
		return "style=dashed"
	case b.Order == 2:
		return `color="black:black"`
	case b.Order == 3:
		return `color="black:black:black"`
	default:
		return "style=solid"
	}
}

// RenderDOT renders a DOT graph to SVG using Graphviz in-process.
// This is the only render path that can fail; callers surface the
// error rather than converting it to an error graphic, since the DOT
// view is a diagnostic aid and not part of the lenient pipeline.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
