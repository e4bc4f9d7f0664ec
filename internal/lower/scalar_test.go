package lower_test

import (
	"testing"

	lltypes "github.com/llir/llvm/ir/types"

	"ember/internal/lower"
	"ember/internal/target"
	"ember/internal/types"
)

func TestLowerScalar_MachineTypes(t *testing.T) {
	in := types.NewInterner()
	l := lower.New(target.X86_64LinuxGNU(), in)

	cases := []struct {
		kind types.ScalarKind
		want lltypes.Type
	}{
		{types.ScalarVoid, lltypes.Void},
		{types.ScalarNoReturn, lltypes.Void},
		{types.ScalarBool, lltypes.I1},
		{types.ScalarInt8, lltypes.I8},
		{types.ScalarUint8, lltypes.I8},
		{types.ScalarChar, lltypes.I8},
		{types.ScalarInt16, lltypes.I16},
		{types.ScalarUint16, lltypes.I16},
		{types.ScalarWChar, lltypes.I16},
		{types.ScalarInt32, lltypes.I32},
		{types.ScalarUint32, lltypes.I32},
		{types.ScalarDChar, lltypes.I32},
		{types.ScalarInt64, lltypes.I64},
		{types.ScalarUint64, lltypes.I64},
		{types.ScalarInt128, lltypes.I128},
		{types.ScalarUint128, lltypes.I128},
		{types.ScalarFloat32, lltypes.Float},
		{types.ScalarImaginary32, lltypes.Float},
		{types.ScalarFloat64, lltypes.Double},
		{types.ScalarImaginary64, lltypes.Double},
		{types.ScalarFloat80, lltypes.X86_FP80},
		{types.ScalarImaginary80, lltypes.X86_FP80},
	}
	for _, tc := range cases {
		got := l.Type(in.Scalar(tc.kind))
		if !got.Equal(tc.want) {
			t.Errorf("scalar %s: got %s, want %s", tc.kind, got.LLString(), tc.want.LLString())
		}
	}
}

func TestExtendedRealType_ABITable(t *testing.T) {
	cases := []struct {
		triple string
		want   lltypes.Type
	}{
		{"x86_64-linux-gnu", lltypes.X86_FP80},
		{"i686-linux-gnu", lltypes.X86_FP80},
		{"x86_64-pc-windows-msvc", lltypes.Double},
		{"aarch64-linux-gnu", lltypes.FP128},
		{"aarch64_be-linux-gnu", lltypes.FP128},
		{"arm64-apple-darwin", lltypes.Double},
		// AArch64 Android is still AArch64: quadruple precision, not the
		// double fallback non-x86_64 Android otherwise gets.
		{"aarch64-linux-android", lltypes.FP128},
		{"x86_64-linux-android", lltypes.FP128},
		{"i686-linux-android", lltypes.Double},
		// Architectures outside the known set take the double fallback.
		{"riscv64-linux-gnu", lltypes.Double},
	}
	for _, tc := range cases {
		tgt := target.MustParse(tc.triple)
		got := lower.ExtendedRealType(tgt)
		if !got.Equal(tc.want) {
			t.Errorf("%s: extended real is %s, want %s", tc.triple, got.LLString(), tc.want.LLString())
		}

		// The same decision must flow through full scalar lowering.
		in := types.NewInterner()
		l := lower.New(tgt, in)
		if lowered := l.Type(in.Scalar(types.ScalarFloat80)); !lowered.Equal(tc.want) {
			t.Errorf("%s: f80 lowered to %s, want %s", tc.triple, lowered.LLString(), tc.want.LLString())
		}
	}
}

func TestComplexLayout(t *testing.T) {
	for _, tgt := range target.Presets() {
		in := types.NewInterner()
		l := lower.New(tgt, in)

		// complex64 is {double, double} on every target.
		st, ok := l.Type(in.Scalar(types.ScalarComplex64)).(*lltypes.StructType)
		if !ok {
			t.Fatalf("%s: complex64 did not lower to a struct", tgt)
		}
		if len(st.Fields) != 2 || !st.Fields[0].Equal(lltypes.Double) || !st.Fields[1].Equal(lltypes.Double) {
			t.Errorf("%s: complex64 lowered to %s, want {double, double}", tgt, st.LLString())
		}

		// complex80 halves follow the extended-real decision.
		half := lower.ExtendedRealType(tgt)
		st80, ok := l.Type(in.Scalar(types.ScalarComplex80)).(*lltypes.StructType)
		if !ok {
			t.Fatalf("%s: complex80 did not lower to a struct", tgt)
		}
		if len(st80.Fields) != 2 || !st80.Fields[0].Equal(half) || !st80.Fields[1].Equal(half) {
			t.Errorf("%s: complex80 lowered to %s, want two %s fields", tgt, st80.LLString(), half.LLString())
		}
	}
}

func TestLowerScalar_WrongKindPanics(t *testing.T) {
	in := types.NewInterner()
	l := lower.New(target.X86_64LinuxGNU(), in)
	ptr := in.Pointer(in.Scalar(types.ScalarInt32))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for LowerScalar on a pointer type")
		}
	}()
	l.LowerScalar(ptr)
}
