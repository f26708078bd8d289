package vals

import (
	"math"

	"github.com/xiaq/persistent/hash"
)

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// Hash returns the 32-bit hash of a value, consistent with Equal. For values
// it doesn't know about it returns 0, which is OK in terms of correctness.
func Hash(v any) uint32 {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case float64:
		return hash.UInt64(math.Float64bits(v))
	case Symbol:
		return hash.String(string(v))
	case List:
		h := hash.DJBInit
		for it := v.Iterator(); it.HasElem(); it.Next() {
			h = hash.DJBCombine(h, Hash(it.Elem()))
		}
		return h
	case Hasher:
		return v.Hash()
	}
	return 0
}
