package target_test

import (
	"testing"

	"ember/internal/target"
)

func TestParse(t *testing.T) {
	cases := []struct {
		triple string
		want   target.Target
	}{
		{"x86_64-linux-gnu", target.X86_64LinuxGNU()},
		{"amd64-linux-gnu", target.X86_64LinuxGNU()},
		{"x86_64-pc-windows-msvc", target.X86_64WindowsMSVC()},
		{"i686-linux-gnu", target.X86LinuxGNU()},
		{"aarch64-linux-gnu", target.AArch64LinuxGNU()},
		{"arm64-apple-darwin", target.AArch64Darwin()},
		{"aarch64-linux-android", target.AArch64Android()},
		{"x86_64-linux-android", target.X86_64Android()},
		{"AARCH64-Linux-GNU", target.AArch64LinuxGNU()},
		{"aarch64_be-linux-gnu", target.Target{Arch: target.ArchAArch64_BE, OS: target.OSLinux, Env: target.EnvGNU}},
		{"x86_64-unknown-freebsd", target.Target{Arch: target.ArchX86_64, OS: target.OSFreeBSD}},
		{"riscv64-linux-gnu", target.Target{Arch: target.ArchUnknown, OS: target.OSLinux, Env: target.EnvGNU}},
		{"wasm32-unknown-unknown", target.Target{}},
	}
	for _, tc := range cases {
		got, err := target.Parse(tc.triple)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.triple, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.triple, got, tc.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	for _, triple := range []string{"", "  "} {
		if _, err := target.Parse(triple); err == nil {
			t.Errorf("Parse(%q): expected error", triple)
		}
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		tgt                                            target.Target
		anyX86, anyAArch64, windowsMSVC, darwin, android bool
	}{
		{target.X86_64LinuxGNU(), true, false, false, false, false},
		{target.X86LinuxGNU(), true, false, false, false, false},
		{target.X86_64WindowsMSVC(), true, false, true, false, false},
		{target.AArch64LinuxGNU(), false, true, false, false, false},
		{target.AArch64Darwin(), false, true, false, true, false},
		{target.AArch64Android(), false, true, false, false, true},
		{target.X86_64Android(), true, false, false, false, true},
	}
	for _, tc := range cases {
		if got := tc.tgt.AnyX86(); got != tc.anyX86 {
			t.Errorf("%s: AnyX86 = %v", tc.tgt, got)
		}
		if got := tc.tgt.AnyAArch64(); got != tc.anyAArch64 {
			t.Errorf("%s: AnyAArch64 = %v", tc.tgt, got)
		}
		if got := tc.tgt.IsWindowsMSVC(); got != tc.windowsMSVC {
			t.Errorf("%s: IsWindowsMSVC = %v", tc.tgt, got)
		}
		if got := tc.tgt.IsDarwin(); got != tc.darwin {
			t.Errorf("%s: IsDarwin = %v", tc.tgt, got)
		}
		if got := tc.tgt.IsAndroid(); got != tc.android {
			t.Errorf("%s: IsAndroid = %v", tc.tgt, got)
		}
	}
}

func TestPtrSize(t *testing.T) {
	if got := target.X86LinuxGNU().PtrSize(); got != 4 {
		t.Errorf("i686 pointer size = %d, want 4", got)
	}
	if got := target.X86_64LinuxGNU().PtrSize(); got != 8 {
		t.Errorf("x86_64 pointer size = %d, want 8", got)
	}
	if got := target.AArch64Darwin().PtrSize(); got != 8 {
		t.Errorf("aarch64 pointer size = %d, want 8", got)
	}
}

func TestTriple_RoundTrip(t *testing.T) {
	for _, tgt := range target.Presets() {
		parsed, err := target.Parse(tgt.Triple())
		if err != nil {
			t.Errorf("%s: %v", tgt.Triple(), err)
			continue
		}
		if parsed != tgt {
			t.Errorf("round trip of %s produced %+v", tgt.Triple(), parsed)
		}
	}
}
