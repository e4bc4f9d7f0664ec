package lower

import (
	"fmt"

	lltypes "github.com/llir/llvm/ir/types"

	"ember/internal/types"
)

// LowerPointer lowers pointer-to-T and the null type. Panics when id is
// neither.
func (l *Lowering) LowerPointer(id types.TypeID) *Lowered {
	tt := l.Types.MustLookup(id)
	if tt.Kind != types.KindPointer && tt.Kind != types.KindNull {
		panic(fmt.Sprintf("lower: LowerPointer on %s type#%d", tt.Kind, id))
	}

	var elem lltypes.Type
	if tt.Kind == types.KindNull {
		// Null carries no pointee; lower it as an opaque byte pointer.
		elem = lltypes.I8
	} else {
		elem = l.MemType(tt.Elem)

		// Lowering the pointee may already have built this exact pointer
		// type, e.g. for *Node inside record Node { next: *Node }.
		if lw := l.slots[id]; lw != nil {
			return lw
		}
	}

	return l.store(KindPointer, id, lltypes.NewPointer(elem))
}
