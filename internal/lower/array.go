package lower

import (
	"fmt"

	"fortio.org/safecast"
	lltypes "github.com/llir/llvm/ir/types"

	"ember/internal/types"
)

// LowerFixedArray lowers an array with a compile-time length. Panics when id
// is not a fixed array.
func (l *Lowering) LowerFixedArray(id types.TypeID) *Lowered {
	tt := l.Types.MustLookup(id)
	if tt.Kind != types.KindFixedArray {
		panic(fmt.Sprintf("lower: LowerFixedArray on %s type#%d", tt.Kind, id))
	}

	elem := l.MemType(tt.Elem)

	// The element recursion can build this array first, as part of a record
	// forward reference.
	if lw := l.slots[id]; lw != nil {
		return lw
	}

	dim, err := safecast.Conv[uint64](tt.Count)
	if err != nil {
		panic(fmt.Errorf("lower: fixed array type#%d has invalid length %d: %w", id, tt.Count, err))
	}
	return l.store(KindFixedArray, id, lltypes.NewArray(dim, elem))
}

// LowerDynamicArray lowers a runtime-length array to its fat-pointer
// representation {length, data}. Panics when id is not a dynamic array.
func (l *Lowering) LowerDynamicArray(id types.TypeID) *Lowered {
	tt := l.Types.MustLookup(id)
	if tt.Kind != types.KindDynamicArray {
		panic(fmt.Sprintf("lower: LowerDynamicArray on %s type#%d", tt.Kind, id))
	}

	elem := l.MemType(tt.Elem)

	// Same forward-reference hazard as for pointers.
	if lw := l.slots[id]; lw != nil {
		return lw
	}

	// Field order is an ABI contract: runtime and codegen index this struct
	// by position, length first.
	fat := lltypes.NewStruct(l.NativeSizeType(), lltypes.NewPointer(elem))
	return l.store(KindDynamicArray, id, fat)
}
