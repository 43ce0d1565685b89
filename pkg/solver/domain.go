package solver

import "math/bits"

// maxDomainWidth bounds MaxValue-MinValue+1. Every puzzle family in the
// specification (Sudoku, Binairo, Nonogram row clues, Skyscraper, ...) has a width
// well under this; a single uint64 word keeps Domain a cheap comparable value type
// instead of the slice-of-words BitSetDomain the teacher uses for much larger
// logic-programming domains.
const maxDomainWidth = 64

// Domain is the set of still-possible values for one cell, represented as a bitset
// over offsets from a puzzle's MinValue (§4.A). Bit k set means MinValue+k is a
// candidate. Domain is an immutable value type: every mutating method returns a new
// Domain rather than modifying the receiver.
type Domain struct {
	bits uint64
}

// fullDomain returns a Domain with all width bits set.
func fullDomain(width int) Domain {
	if width <= 0 {
		return Domain{}
	}
	if width >= 64 {
		return Domain{bits: ^uint64(0)}
	}
	return Domain{bits: (uint64(1) << uint(width)) - 1}
}

// singletonDomain returns a Domain containing only offset k.
func singletonDomain(k int) Domain {
	return Domain{bits: uint64(1) << uint(k)}
}

// emptyDomain returns the empty Domain.
func emptyDomain() Domain { return Domain{} }

// Has reports whether offset k is a candidate.
func (d Domain) Has(k int) bool {
	if k < 0 || k >= maxDomainWidth {
		return false
	}
	return d.bits&(uint64(1)<<uint(k)) != 0
}

// Remove returns a Domain with offset k cleared.
func (d Domain) Remove(k int) Domain {
	if k < 0 || k >= maxDomainWidth {
		return d
	}
	return Domain{bits: d.bits &^ (uint64(1) << uint(k))}
}

// Count returns the number of remaining candidates.
func (d Domain) Count() int {
	return bits.OnesCount64(d.bits)
}

// IsEmpty reports whether no candidates remain. An empty Domain is a violation;
// the engine detects and rolls it back (§3).
func (d Domain) IsEmpty() bool { return d.bits == 0 }

// IsSingleton reports whether exactly one candidate remains.
func (d Domain) IsSingleton() bool { return d.bits != 0 && d.bits&(d.bits-1) == 0 }

// SingletonOffset returns the one remaining offset. Behaviour is undefined if the
// domain is not a singleton.
func (d Domain) SingletonOffset() int { return bits.TrailingZeros64(d.bits) }

// Min returns the smallest candidate offset, or -1 if empty.
func (d Domain) Min() int {
	if d.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(d.bits)
}

// Max returns the largest candidate offset, or -1 if empty.
func (d Domain) Max() int {
	if d.bits == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(d.bits)
}

// Iterate calls f for every remaining candidate offset, ascending.
func (d Domain) Iterate(f func(offset int)) {
	rest := d.bits
	for rest != 0 {
		k := bits.TrailingZeros64(rest)
		f(k)
		rest &^= uint64(1) << uint(k)
	}
}

// Intersect returns the set intersection of two domains.
func (d Domain) Intersect(other Domain) Domain { return Domain{bits: d.bits & other.bits} }

// Union returns the set union of two domains.
func (d Domain) Union(other Domain) Domain { return Domain{bits: d.bits | other.bits} }

// Complement returns the candidates of width not present in d.
func (d Domain) Complement(width int) Domain { return Domain{bits: fullDomain(width).bits &^ d.bits} }

// FilterPred returns a Domain with every offset for which pred returns true removed.
func (d Domain) FilterPred(pred func(offset int) bool) Domain {
	result := d
	d.Iterate(func(offset int) {
		if pred(offset) {
			result = result.Remove(offset)
		}
	})
	return result
}

// Equal reports whether two domains contain exactly the same offsets.
func (d Domain) Equal(other Domain) bool { return d.bits == other.bits }
