package satenc

import "errors"

// ErrEmptyStructure indicates an attempt to encode a structure with no
// vertices; the driver loop handles the |V|<=1 cases before ever reaching
// the encoder, so this is only ever an internal-invariant guard.
var ErrEmptyStructure = errors.New("satenc: structure has no vertices")

// ErrMalformedModel indicates the solver's assignment map assigned no image
// to some vertex — a broken functionality-block invariant. A vertex with
// several true atoms is not detected; the decoder takes the first in
// vertex order. The encoder's own functionality clause should make this
// unreachable for any well-formed solver.
var ErrMalformedModel = errors.New("satenc: model assigns no image to a vertex")
