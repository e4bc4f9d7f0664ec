package lower

import (
	"fmt"

	"fortio.org/safecast"
	lltypes "github.com/llir/llvm/ir/types"

	"ember/internal/types"
)

// LowerVector lowers a fixed-width SIMD vector. The vector's structural basis
// must be a fixed array of the scalar element type. Panics when id is not a
// vector or the basis is malformed.
func (l *Lowering) LowerVector(id types.TypeID) *Lowered {
	tt := l.Types.MustLookup(id)
	if tt.Kind != types.KindVector {
		panic(fmt.Sprintf("lower: LowerVector on %s type#%d", tt.Kind, id))
	}
	basis := l.Types.MustLookup(tt.Elem)
	if basis.Kind != types.KindFixedArray {
		panic(fmt.Sprintf("lower: vector type#%d basis is %s, want fixed-array", id, basis.Kind))
	}

	elem := l.MemType(basis.Elem)

	// Same forward-reference hazard as for pointers and arrays.
	if lw := l.slots[id]; lw != nil {
		return lw
	}

	lanes, err := safecast.Conv[uint64](basis.Count)
	if err != nil {
		panic(fmt.Errorf("lower: vector type#%d has invalid lane count %d: %w", id, basis.Count, err))
	}
	// NewVector produces a fixed-width vector; scalable vectors are never
	// used here.
	return l.store(KindVector, id, lltypes.NewVector(lanes, elem))
}
