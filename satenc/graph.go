package satenc

import (
	"fmt"
	"strings"

	"github.com/mnederkorn/cores/structure"
)

// atomGraph names the variable encoding "u maps to v" for a graph retract
// search.
func atomGraph(u, v string) string { return u + "_" + v }

// EncodeGraph emits a three-block formula: functionality + fixed image
// (block 1), edge preservation by label-set superset (block 2), properness
// (block 3), each block conjoined to the next with "&\n". Block 2 is
// omitted when g has no edges.
func EncodeGraph(g *structure.Graph) (Formula, error) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return Formula{}, ErrEmptyStructure
	}

	var out strings.Builder
	writeFunctionalityBlock(&out, verts, atomGraph)
	out.WriteString("&\n")

	bundles := g.EdgeBundles()
	if len(bundles) > 0 {
		writeGraphEdgeBlock(&out, bundles)
		out.WriteString("&\n")
	}

	writeProperBlock(&out, verts, atomGraph)

	return Formula{Text: out.String(), Kind: KindGraph, Vertices: verts}, nil
}

// writeFunctionalityBlock emits ∧_u ( ∨_v ( ∧_{w≠v} ¬x_{u,w} ∧ x_{u,v} ∧ x_{v,v} ) ),
// shared in shape by both the graph and hypergraph encodings. Vertices
// after the first are joined with their own "&\n" separator, same as the
// blocks are joined to each other.
func writeFunctionalityBlock(out *strings.Builder, verts []string, atom func(u, v string) string) {
	for i, u := range verts {
		if i > 0 {
			out.WriteString("&\n")
		}
		out.WriteByte('(')
		for j, v := range verts {
			if j > 0 {
				out.WriteString("|\n")
			}
			out.WriteByte('(')
			for _, w := range verts {
				if w == v {
					continue
				}
				out.WriteString("!" + atom(u, w) + "&")
			}
			out.WriteString(atom(u, v) + "&" + atom(v, v) + ")")
		}
		out.WriteByte(')')
	}
}

// writeProperBlock emits ∨_v ( ∧_u ¬x_{u,v} ), the properness block shared
// in shape by both encodings.
func writeProperBlock(out *strings.Builder, verts []string, atom func(u, v string) string) {
	out.WriteByte('(')
	for i, v := range verts {
		if i > 0 {
			out.WriteString("|\n")
		}
		out.WriteByte('(')
		for j, u := range verts {
			if j > 0 {
				out.WriteByte('&')
			}
			out.WriteString("!" + atom(u, v))
		}
		out.WriteByte(')')
	}
	out.WriteByte(')')
}

// writeGraphEdgeBlock emits, for each edge bundle (a,b), a disjunction over
// every bundle (a',b') whose labels are a superset of (a,b)'s. Every bundle
// trivially covers itself (a label set is always a superset of itself), so
// the inner disjunction is never empty.
func writeGraphEdgeBlock(out *strings.Builder, bundles []structure.EdgeBundle) {
	for i, e := range bundles {
		if i > 0 {
			out.WriteString("&\n")
		}
		out.WriteByte('(')
		first := true
		for _, o := range bundles {
			if !o.Superset(e) {
				continue
			}
			if !first {
				out.WriteByte('|')
			}
			first = false
			out.WriteString("(" + atomGraph(e.From, o.From) + "&" + atomGraph(e.To, o.To) + ")")
		}
		out.WriteByte(')')
	}
}

// DecodeGraph reads the solver's Boolean assignment map (atom name -> true
// for satisfied positive literals) against the vertex domain f.Vertices and
// returns the resulting Morphism.
func DecodeGraph(f Formula, assignments map[string]bool) (structure.Morphism, error) {
	var m structure.Morphism
	for _, u := range f.Vertices {
		found := false
		for _, v := range f.Vertices {
			if assignments[atomGraph(u, v)] {
				found = true
				if u != v {
					m = append(m, structure.Pair{Src: u, Tgt: v})
				}
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrMalformedModel, u)
		}
	}
	return m, nil
}
