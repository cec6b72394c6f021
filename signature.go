package depot

import (
	"iter"
	"slices"
	"strings"

	"github.com/TheBitDrifter/mask"
)

// Signature is an immutable set of component types. It describes either the
// composition an entity currently has or the composition a system requires.
//
// Set tests run on the mask while every type fits in it. Types at or past
// mask.MaxBits (64 in the default build, see the mask build tags) switch the
// signature to comparing its sorted type list instead.
type Signature struct {
	bits  mask.Mask
	wide  bool
	types []ComponentType
}

func fitsMask(t ComponentType) bool {
	return int(t) < int(mask.MaxBits)
}

func NewSignature(types ...ComponentType) Signature {
	sorted := slices.Clone(types)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	sig := Signature{types: sorted}
	for _, t := range sorted {
		if !fitsMask(t) {
			sig.wide = true
			continue
		}
		sig.bits.Mark(uint32(t))
	}
	return sig
}

// SignatureOf builds the signature of the given component descriptors.
func SignatureOf(components ...Component) Signature {
	types := make([]ComponentType, len(components))
	for i, c := range components {
		types[i] = ComponentTypeFor(c)
	}
	return NewSignature(types...)
}

func (s Signature) Contains(t ComponentType) bool {
	_, found := slices.BinarySearch(s.types, t)
	return found
}

// Includes reports whether s is a superset of required. Every signature
// includes the empty signature.
func (s Signature) Includes(required Signature) bool {
	if len(required.types) == 0 {
		return true
	}
	if len(required.types) > len(s.types) {
		return false
	}
	if s.wide || required.wide {
		return includesSorted(s.types, required.types)
	}
	return s.bits.ContainsAll(required.bits)
}

// Intersects reports whether s and other share at least one type.
func (s Signature) Intersects(other Signature) bool {
	if len(s.types) == 0 || len(other.types) == 0 {
		return false
	}
	if s.wide || other.wide {
		return intersectsSorted(s.types, other.types)
	}
	return s.bits.ContainsAny(other.bits)
}

func (s Signature) Equal(other Signature) bool {
	if s.wide || other.wide {
		return slices.Equal(s.types, other.types)
	}
	return s.bits == other.bits
}

func (s Signature) Len() int {
	return len(s.types)
}

func (s Signature) IsEmpty() bool {
	return len(s.types) == 0
}

// Types yields the member types in ascending order.
func (s Signature) Types() iter.Seq[ComponentType] {
	return slices.Values(s.types)
}

func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, t := range s.types {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(componentName(t))
	}
	sb.WriteByte('}')
	return sb.String()
}

// includesSorted reports whether every element of sub is in set. Both must be
// sorted and free of duplicates.
func includesSorted(set, sub []ComponentType) bool {
	i := 0
	for _, t := range sub {
		for i < len(set) && set[i] < t {
			i++
		}
		if i == len(set) || set[i] != t {
			return false
		}
		i++
	}
	return true
}

func intersectsSorted(a, b []ComponentType) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			return true
		}
	}
	return false
}
