package types

import "fmt"

// TypeID uniquely identifies a semantic type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// RecordID indexes record metadata inside the interner.
type RecordID uint32

// NoRecordID marks the absence of record metadata.
const NoRecordID RecordID = 0

// Kind enumerates the structural categories of semantic types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindScalar
	KindPointer
	KindNull
	KindFixedArray
	KindDynamicArray
	KindVector
	KindRecord
	KindQualified
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindScalar:
		return "scalar"
	case KindPointer:
		return "pointer"
	case KindNull:
		return "null"
	case KindFixedArray:
		return "fixed-array"
	case KindDynamicArray:
		return "dynamic-array"
	case KindVector:
		return "vector"
	case KindRecord:
		return "record"
	case KindQualified:
		return "qualified"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ScalarKind enumerates every primitive type the front end knows.
type ScalarKind uint8

const (
	ScalarInvalid ScalarKind = iota
	ScalarVoid
	ScalarNoReturn
	ScalarBool
	ScalarInt8
	ScalarInt16
	ScalarInt32
	ScalarInt64
	ScalarInt128
	ScalarUint8
	ScalarUint16
	ScalarUint32
	ScalarUint64
	ScalarUint128
	ScalarChar
	ScalarWChar
	ScalarDChar
	ScalarFloat32
	ScalarFloat64
	ScalarFloat80
	ScalarImaginary32
	ScalarImaginary64
	ScalarImaginary80
	ScalarComplex32
	ScalarComplex64
	ScalarComplex80
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarVoid:
		return "void"
	case ScalarNoReturn:
		return "noreturn"
	case ScalarBool:
		return "bool"
	case ScalarInt8:
		return "i8"
	case ScalarInt16:
		return "i16"
	case ScalarInt32:
		return "i32"
	case ScalarInt64:
		return "i64"
	case ScalarInt128:
		return "i128"
	case ScalarUint8:
		return "u8"
	case ScalarUint16:
		return "u16"
	case ScalarUint32:
		return "u32"
	case ScalarUint64:
		return "u64"
	case ScalarUint128:
		return "u128"
	case ScalarChar:
		return "char"
	case ScalarWChar:
		return "wchar"
	case ScalarDChar:
		return "dchar"
	case ScalarFloat32:
		return "f32"
	case ScalarFloat64:
		return "f64"
	case ScalarFloat80:
		return "f80"
	case ScalarImaginary32:
		return "imag32"
	case ScalarImaginary64:
		return "imag64"
	case ScalarImaginary80:
		return "imag80"
	case ScalarComplex32:
		return "complex32"
	case ScalarComplex64:
		return "complex64"
	case ScalarComplex80:
		return "complex80"
	default:
		return fmt.Sprintf("ScalarKind(%d)", k)
	}
}

// Qualifier is a bit set of type qualifiers carried by KindQualified wrappers.
// Qualifiers never change the machine representation of a type.
type Qualifier uint8

const (
	QualConst Qualifier = 1 << iota
	QualImmutable
	QualShared
)

// Type is a compact descriptor for any semantic type.
type Type struct {
	Kind   Kind
	Scalar ScalarKind // KindScalar
	Elem   TypeID     // pointee, array element, vector basis, qualified underlying
	Count  int64      // fixed-array length, already constant-folded by the front end
	Quals  Qualifier  // KindQualified
	Record RecordID   // KindRecord
}

// Descriptor helpers ---------------------------------------------------------

// MakeScalar describes a primitive type.
func MakeScalar(k ScalarKind) Type {
	return Type{Kind: KindScalar, Scalar: k}
}

// MakePointer describes pointer-to-elem.
func MakePointer(elem TypeID) Type {
	return Type{Kind: KindPointer, Elem: elem}
}

// MakeNull describes the null-type singleton.
func MakeNull() Type {
	return Type{Kind: KindNull}
}

// MakeFixedArray describes an array with a compile-time length.
func MakeFixedArray(elem TypeID, count int64) Type {
	return Type{Kind: KindFixedArray, Elem: elem, Count: count}
}

// MakeDynamicArray describes a runtime-length slice of elem (fat pointer).
func MakeDynamicArray(elem TypeID) Type {
	return Type{Kind: KindDynamicArray, Elem: elem}
}

// MakeVector describes a SIMD vector whose basis is a fixed-array TypeID.
func MakeVector(basis TypeID) Type {
	return Type{Kind: KindVector, Elem: basis}
}

// MakeQualified wraps an underlying type in a qualifier set.
func MakeQualified(elem TypeID, q Qualifier) Type {
	return Type{Kind: KindQualified, Elem: elem, Quals: q}
}
