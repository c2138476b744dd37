package plonkish

// Circuit pairs a fixed configuration with one witness. C is the circuit's
// own config type, produced by Configure and handed back to Synthesize.
//
// Configure must depend only on the circuit's shape: a witnessed circuit and
// its WithoutWitnesses counterpart must declare identical columns, gates and
// selectors, so key material derived from the latter verifies proofs of the
// former. Synthesize runs once per proof attempt and once per key
// derivation; both passes must touch the same cells and enable the same
// selector rows, differing only in cell values.
type Circuit[C any] interface {
	// WithoutWitnesses returns a structurally identical circuit with all
	// private witness values replaced by value.Unknown.
	WithoutWitnesses() Circuit[C]

	// Configure declares the circuit's columns, selectors and gates.
	Configure(meta *ConstraintSystem) C

	// Synthesize fills witness cells and binds public outputs. It returns
	// the first assignment or binding error unchanged.
	Synthesize(config C, layouter *Layouter) error
}
