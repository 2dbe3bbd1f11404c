package reducer

import "github.com/mnederkorn/cores/structure"

// rewriteTrace rewrites a sequence of non-identity merge pairs so that
// applying them one at a time never collides on a name an earlier pair
// already claimed: before pair i is applied, each of its two names gets a
// suffix built from every earlier pair (aj, bj), j<i, whose target bj
// matches that name — appending sep+aj for each match, in order.
//
// The separator is configurable so graphs and hypergraphs can each record
// their merges with their own convention ("-" and "." respectively).
func rewriteTrace(pairs structure.Morphism, sep string) structure.Morphism {
	out := make(structure.Morphism, len(pairs))
	for i, p := range pairs {
		src, tgt := p.Src, p.Tgt
		for j := 0; j < i; j++ {
			if pairs[j].Tgt == p.Src {
				src += sep + pairs[j].Src
			}
			if pairs[j].Tgt == p.Tgt {
				tgt += sep + pairs[j].Src
			}
		}
		out[i] = structure.Pair{Src: src, Tgt: tgt}
	}
	return out
}
