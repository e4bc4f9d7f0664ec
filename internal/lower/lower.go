package lower

import (
	"fmt"

	lltypes "github.com/llir/llvm/ir/types"

	"ember/internal/target"
	"ember/internal/types"
)

// Lowering maps semantic types to machine representations for one target.
//
// The slot table is the explicit-map rendition of a per-node cache: TypeIDs
// are structurally interned, so qualifier-stripped TypeID equality is exactly
// "same semantic type". Not safe for concurrent use; lowering is a
// single-threaded, reentrant call graph.
type Lowering struct {
	Types  *types.Interner
	Target target.Target

	slots map[types.TypeID]*Lowered
}

// New creates a Lowering engine for the given target.
func New(tgt target.Target, typesIn *types.Interner) *Lowering {
	if typesIn == nil {
		panic("lower: nil type interner")
	}
	return &Lowering{
		Types:  typesIn,
		Target: tgt,
		slots:  make(map[types.TypeID]*Lowered, 256),
	}
}

// Slot returns the lowered representation cached for the unqualified form of
// id, or nil when absent and create is false. With create set, a miss runs
// the category dispatch and the slot is guaranteed non-nil on return.
//
// Record types must be passed by their canonical TypeID; anything else is a
// front-end bug and panics.
func (l *Lowering) Slot(id types.TypeID, create bool) *Lowered {
	id = l.Types.Unqualified(id)
	l.checkCanonical(id)

	if create && l.slots[id] == nil {
		l.lowerType(id)
		if l.slots[id] == nil {
			panic(fmt.Sprintf("lower: dispatch left type#%d without a representation", id))
		}
	}
	return l.slots[id]
}

// Type returns the machine representation of id, creating it on first use.
func (l *Lowering) Type(id types.TypeID) lltypes.Type {
	return l.Slot(id, true).LL
}

// MemType returns the in-memory machine representation of id. Voids and i1
// booleans are not storable and widen to i8, matching the memory format the
// rest of the backend loads and stores.
func (l *Lowering) MemType(id types.TypeID) lltypes.Type {
	t := l.Type(id)
	if t.Equal(lltypes.Void) || t.Equal(lltypes.I1) {
		return lltypes.I8
	}
	return t
}

// lowerType dispatches a cache miss to the category constructor matching the
// structural kind of id.
func (l *Lowering) lowerType(id types.TypeID) {
	tt := l.Types.MustLookup(id)
	switch tt.Kind {
	case types.KindScalar:
		l.LowerScalar(id)
	case types.KindPointer, types.KindNull:
		l.LowerPointer(id)
	case types.KindFixedArray:
		l.LowerFixedArray(id)
	case types.KindDynamicArray:
		l.LowerDynamicArray(id)
	case types.KindVector:
		l.LowerVector(id)
	case types.KindRecord:
		l.LowerRecord(id)
	default:
		panic(fmt.Sprintf("lower: unsupported type kind %s (type#%d)", tt.Kind, id))
	}
}

// store publishes a freshly constructed Lowered value. The slot must be empty
// at this point; a populated slot means a category constructor skipped the
// post-recursion re-check and the forward-reference protocol was bypassed.
func (l *Lowering) store(kind Kind, id types.TypeID, lt lltypes.Type) *Lowered {
	if l.slots[id] != nil {
		panic(fmt.Sprintf("lower: type#%d already has a lowered representation", id))
	}
	lw := &Lowered{Kind: kind, Sem: id, LL: lt}
	l.slots[id] = lw
	return lw
}

// NativeSizeType is the pointer-width unsigned integer the target uses for
// sizes and offsets; it is the length field of dynamic arrays.
func (l *Lowering) NativeSizeType() lltypes.Type {
	if l.Target.PtrSize() == 4 {
		return lltypes.I32
	}
	return lltypes.I64
}

func (l *Lowering) checkCanonical(id types.TypeID) {
	tt := l.Types.MustLookup(id)
	if tt.Kind != types.KindRecord {
		return
	}
	info, ok := l.Types.RecordInfo(id)
	if !ok {
		panic(fmt.Sprintf("lower: record type#%d without metadata", id))
	}
	if info.Canonical != id {
		panic(fmt.Sprintf("lower: record %q reached lowering through non-canonical type#%d (canonical is type#%d)",
			info.Name, id, info.Canonical))
	}
}
