package diag

// Ranger is implemented by values tied to a span of source text, like syntax
// tree nodes and errors.
type Ranger interface {
	Range() Ranging
}

// Ranging is the half-open byte range [From, To) of a source text. Embedding
// it is the usual way to implement Ranger.
type Ranging struct {
	From int
	To   int
}

// Range returns r.
func (r Ranging) Range() Ranging { return r }

// Contains reports whether the byte at index i is within r.
func (r Ranging) Contains(i int) bool { return r.From <= i && i < r.To }

// MixedRanging spans from the start of a to the end of b.
func MixedRanging(a, b Ranger) Ranging {
	return Ranging{a.Range().From, b.Range().To}
}
