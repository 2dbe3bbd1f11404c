package satenc

import (
	"fmt"
	"strings"

	"github.com/mnederkorn/cores/structure"
)

// atomHyper names the variable encoding "u maps to v" for a hypergraph
// retract search.
func atomHyper(u, v string) string { return u + "@" + v }

// EncodeHypergraph emits a formula with functionality + fixed image (block
// 1, identical in shape to the graph encoding), edge preservation by
// same-label positional matching (block 2, omitted entirely when no edge of
// non-zero arity exists), and properness (block 3).
func EncodeHypergraph(hg *structure.HGraph) (Formula, error) {
	verts := hg.Vertices()
	if len(verts) == 0 {
		return Formula{}, ErrEmptyStructure
	}

	var out strings.Builder
	writeFunctionalityBlock(&out, verts, atomHyper)
	out.WriteString("&\n")

	if block := hyperEdgeBlock(hg); block != "" {
		out.WriteString(block)
		out.WriteString("&\n")
	}

	writeProperBlock(&out, verts, atomHyper)

	return Formula{Text: out.String(), Kind: KindHypergraph, Vertices: verts}, nil
}

// hyperEdgeBlock emits, for each non-zero-arity edge instance e = (label;
// v1..vk), a disjunction over every instance e' of the same label (e itself
// included) asserting x_{vi,vi'} positionally for every i. Zero-arity instances impose
// no constraint on the vertex morphism and are skipped; if no non-zero-arity
// instance exists at all, the block is omitted entirely, leaving the vertex
// morphism free to collapse however the functionality and properness blocks
// allow.
func hyperEdgeBlock(hg *structure.HGraph) string {
	instances := hg.Instances()
	byLabel := make(map[string][]structure.EdgeInstance)
	anyPositive := false
	for _, inst := range instances {
		if len(inst.Args) == 0 {
			continue
		}
		anyPositive = true
		byLabel[inst.Label] = append(byLabel[inst.Label], inst)
	}
	if !anyPositive {
		return ""
	}

	var out strings.Builder
	first := true
	for _, inst := range instances {
		if len(inst.Args) == 0 {
			continue
		}
		if !first {
			out.WriteString("&\n")
		}
		first = false

		out.WriteByte('(')
		innerFirst := true
		for _, other := range byLabel[inst.Label] {
			if !innerFirst {
				out.WriteString("|\n")
			}
			innerFirst = false
			out.WriteByte('(')
			for i, v := range inst.Args {
				if i > 0 {
					out.WriteByte('&')
				}
				out.WriteString(atomHyper(v, other.Args[i]))
			}
			out.WriteByte(')')
		}
		out.WriteByte(')')
	}
	return out.String()
}

// DecodeHypergraph is the hypergraph analogue of DecodeGraph.
func DecodeHypergraph(f Formula, assignments map[string]bool) (structure.Morphism, error) {
	var m structure.Morphism
	for _, u := range f.Vertices {
		found := false
		for _, v := range f.Vertices {
			if assignments[atomHyper(u, v)] {
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
