package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Interner provides stable TypeIDs by hashing structural descriptors.
// Structural identity is what makes a TypeID usable as a cache key further
// down the pipeline: two occurrences of *i32 intern to the same TypeID.
//
// Record types are the exception: they are nominal, never deduplicated, and
// each registration owns a distinct TypeID.
type Interner struct {
	types   []Type
	index   map[typeKey]TypeID
	records []RecordInfo
}

// NewInterner constructs an empty interner. TypeID 0 is reserved as invalid.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	in.records = append(in.records, RecordInfo{}) // reserve 0 as invalid sentinel
	in.internRaw(Type{Kind: KindInvalid})
	return in
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if t.Kind == KindRecord {
		panic("types: record types are nominal, use RegisterRecord")
	}
	key := typeKeyOf(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	id := in.internRaw(t)
	in.index[key] = id
	return id
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Convenience constructors ---------------------------------------------------

// Scalar interns a primitive type.
func (in *Interner) Scalar(k ScalarKind) TypeID {
	return in.Intern(MakeScalar(k))
}

// Pointer interns pointer-to-elem.
func (in *Interner) Pointer(elem TypeID) TypeID {
	return in.Intern(MakePointer(elem))
}

// Null interns the null-type singleton.
func (in *Interner) Null() TypeID {
	return in.Intern(MakeNull())
}

// FixedArray interns an array with a compile-time length.
func (in *Interner) FixedArray(elem TypeID, count int64) TypeID {
	return in.Intern(MakeFixedArray(elem, count))
}

// DynamicArray interns a runtime-length slice of elem.
func (in *Interner) DynamicArray(elem TypeID) TypeID {
	return in.Intern(MakeDynamicArray(elem))
}

// Vector interns a SIMD vector of lanes elements of elem. The vector's
// structural basis is always the fixed array [lanes x elem].
func (in *Interner) Vector(elem TypeID, lanes int64) TypeID {
	basis := in.FixedArray(elem, lanes)
	return in.Intern(MakeVector(basis))
}

// Qualified wraps elem in qualifier bits. Wrapping with an empty set is a
// no-op and returns elem unchanged.
func (in *Interner) Qualified(elem TypeID, q Qualifier) TypeID {
	if q == 0 {
		return elem
	}
	return in.Intern(MakeQualified(elem, q))
}

// Unqualified strips arbitrarily nested qualifier wrappers.
func (in *Interner) Unqualified(id TypeID) TypeID {
	seen := make(map[TypeID]struct{}, 4)
	for id != NoTypeID {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
		tt, ok := in.Lookup(id)
		if !ok || tt.Kind != KindQualified {
			return id
		}
		id = tt.Elem
	}
	return id
}

// VectorBasis returns the fixed-array basis of a vector TypeID.
func (in *Interner) VectorBasis(id TypeID) (TypeID, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindVector {
		return NoTypeID, false
	}
	return tt.Elem, true
}

type typeKey struct {
	Kind   Kind
	Scalar ScalarKind
	Elem   TypeID
	Count  int64
	Quals  Qualifier
}

func typeKeyOf(t Type) typeKey {
	return typeKey{
		Kind:   t.Kind,
		Scalar: t.Scalar,
		Elem:   t.Elem,
		Count:  t.Count,
		Quals:  t.Quals,
	}
}
