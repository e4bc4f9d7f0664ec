// Package lower converts semantic types into their concrete machine-level
// (LLVM) representations for a fixed target.
//
// Every semantic type acquires exactly one Lowered value per Lowering engine,
// created lazily on first demand and immutable afterwards. Composite lowering
// recurses through element and pointee types; cycles through records are
// broken by publishing an aggregate's slot before its field types are lowered
// and by re-checking the slot after every recursive step.
//
// All failure modes in this package are programming-contract violations and
// panic. Malformed user programs are rejected by the front end long before a
// type reaches lowering.
package lower

import (
	"fmt"

	lltypes "github.com/llir/llvm/ir/types"

	"ember/internal/types"
)

// Kind enumerates the machine-level categories a semantic type lowers to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindScalar
	KindPointer
	KindFixedArray
	KindDynamicArray
	KindVector
	KindAggregate
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindScalar:
		return "scalar"
	case KindPointer:
		return "pointer"
	case KindFixedArray:
		return "fixed-array"
	case KindDynamicArray:
		return "dynamic-array"
	case KindVector:
		return "vector"
	case KindAggregate:
		return "aggregate"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Lowered binds an unqualified semantic type to its machine representation.
// Immutable once constructed.
type Lowered struct {
	Kind Kind
	Sem  types.TypeID
	LL   lltypes.Type
}

func (lw *Lowered) String() string {
	if lw == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s type#%d %s", lw.Kind, lw.Sem, lw.LL.LLString())
}
