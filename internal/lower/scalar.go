package lower

import (
	"fmt"

	lltypes "github.com/llir/llvm/ir/types"

	"ember/internal/target"
	"ember/internal/types"
)

// LowerScalar lowers a primitive type. Scalars cannot be self-referential, so
// the slot is stored directly with no forward-reference re-check. Panics when
// id is not a scalar.
func (l *Lowering) LowerScalar(id types.TypeID) *Lowered {
	tt := l.Types.MustLookup(id)
	if tt.Kind != types.KindScalar {
		panic(fmt.Sprintf("lower: LowerScalar on %s type#%d", tt.Kind, id))
	}
	return l.store(KindScalar, id, l.scalarType(tt.Scalar))
}

func (l *Lowering) scalarType(k types.ScalarKind) lltypes.Type {
	switch k {
	case types.ScalarVoid, types.ScalarNoReturn:
		return lltypes.Void

	case types.ScalarInt8, types.ScalarUint8, types.ScalarChar:
		return lltypes.I8

	case types.ScalarInt16, types.ScalarUint16, types.ScalarWChar:
		return lltypes.I16

	case types.ScalarInt32, types.ScalarUint32, types.ScalarDChar:
		return lltypes.I32

	case types.ScalarInt64, types.ScalarUint64:
		return lltypes.I64

	case types.ScalarInt128, types.ScalarUint128:
		return lltypes.I128

	case types.ScalarFloat32, types.ScalarImaginary32:
		return lltypes.Float

	case types.ScalarFloat64, types.ScalarImaginary64:
		return lltypes.Double

	case types.ScalarFloat80, types.ScalarImaginary80:
		return ExtendedRealType(l.Target)

	case types.ScalarComplex32:
		return complexType(lltypes.Float)

	case types.ScalarComplex64:
		return complexType(lltypes.Double)

	case types.ScalarComplex80:
		return complexType(ExtendedRealType(l.Target))

	case types.ScalarBool:
		return lltypes.I1

	default:
		panic(fmt.Sprintf("lower: unknown scalar kind %s", k))
	}
}

// ExtendedRealType picks the machine format backing the 80-bit real kind on
// the given target.
//
// Only x86 has true 80-bit extended precision. MSVC and Android/x86 use
// double precision, Android/x86_64 quadruple.
func ExtendedRealType(t target.Target) lltypes.Type {
	if t.AnyX86() && !t.IsWindowsMSVC() && !t.IsAndroid() {
		return lltypes.X86_FP80
	}

	// AArch64 targets except Darwin use 128-bit quadruple precision.
	if (t.AnyAArch64() && !t.IsDarwin()) || (t.IsAndroid() && t.Arch == target.ArchX86_64) {
		return lltypes.FP128
	}

	// 64-bit double precision for all other targets.
	return lltypes.Double
}

// complexType returns the {real, imaginary} pair layout shared by every
// complex kind. The field order is an ABI contract.
func complexType(half lltypes.Type) lltypes.Type {
	return lltypes.NewStruct(half, half)
}
