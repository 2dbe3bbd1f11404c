package structure

// Pair is a single non-identity vertex assignment: Src maps to Tgt.
// Src != Tgt is an invariant maintained by encoders/decoders; vertices not
// listed in a Morphism are understood to map to themselves.
type Pair struct {
	Src, Tgt string
}

// Morphism is the list of non-identity vertex assignments extracted from a
// solver model.
type Morphism []Pair

// NonIdentity returns the subset of m whose pairs have Src != Tgt. Encoders
// are expected to never emit identity pairs, but callers that build a
// Morphism by hand (tests) may not maintain that invariant themselves.
func (m Morphism) NonIdentity() Morphism {
	out := make(Morphism, 0, len(m))
	for _, p := range m {
		if p.Src != p.Tgt {
			out = append(out, p)
		}
	}
	return out
}

// Sources returns the set of vertex IDs appearing as a Src in m.
func (m Morphism) Sources() map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for _, p := range m {
		out[p.Src] = struct{}{}
	}
	return out
}

// Targets returns the set of vertex IDs appearing as a Tgt in m.
func (m Morphism) Targets() map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for _, p := range m {
		out[p.Tgt] = struct{}{}
	}
	return out
}

// Image returns the image of m over the given vertex set: every vertex not
// listed as a Src, i.e. (vertices \ Sources).
func (m Morphism) Image(vertices []string) []string {
	sources := m.Sources()
	out := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if _, dropped := sources[v]; !dropped {
			out = append(out, v)
		}
	}
	return out
}
