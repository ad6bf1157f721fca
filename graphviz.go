package statefsm

import (
	"fmt"

	"github.com/enetx/g"
)

// ToDOT generates a DOT language string representation of the FSM for visualization.
// Every stored state is a node; the current state is highlighted, the previous one is
// outlined and linked to the current one.
func (f *FSM[ID, D]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	for id := range f.IDs().Iter() {
		e := f.states[id]

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", dotID(id)))

		switch {
		case e == f.current && e == f.previous:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle", "penwidth=2")
		case e == f.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case e == f.previous:
			attrs.Push("style=\"filled,dashed\"", "penwidth=2")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", dotID(id), attrs.Join(", ")))
	}

	if f.current != nil && f.previous != nil {
		b.WriteByte('\n')
		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" previous \", style=dashed];\n",
			dotID(f.previous.id), dotID(f.current.id)))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>Stored state</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
        <tr><td align="right">◌</td><td>Previous state</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("\n  }\n")
	b.WriteString("}\n")

	return b.String()
}

// dotID renders id as the body of a DOT quoted string.
func dotID(id any) g.String {
	return g.String(fmt.Sprint(id)).
		ReplaceAll(`\`, `\\`).
		ReplaceAll(`"`, `\"`).
		ReplaceAll("\n", `\n`)
}
