// Package target describes compilation targets as immutable
// architecture/OS/environment triples. ABI-sensitive lowering decisions read
// the triple through the predicate methods instead of global state, so any
// target can be constructed in tests without process-wide setup.
package target

import (
	"fmt"
	"strings"
)

// Arch is the instruction-set architecture of a target.
type Arch uint8

const (
	ArchUnknown Arch = iota
	ArchX86
	ArchX86_64
	ArchAArch64
	ArchAArch64_BE
)

func (a Arch) String() string {
	switch a {
	case ArchX86:
		return "i686"
	case ArchX86_64:
		return "x86_64"
	case ArchAArch64:
		return "aarch64"
	case ArchAArch64_BE:
		return "aarch64_be"
	default:
		return "unknown"
	}
}

// OS is the operating system of a target.
type OS uint8

const (
	OSUnknown OS = iota
	OSLinux
	OSWindows
	OSDarwin
	OSFreeBSD
)

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	case OSDarwin:
		return "darwin"
	case OSFreeBSD:
		return "freebsd"
	default:
		return "unknown"
	}
}

// Env is the ABI environment of a target.
type Env uint8

const (
	EnvUnknown Env = iota
	EnvGNU
	EnvMSVC
	EnvAndroid
	EnvMusl
)

func (e Env) String() string {
	switch e {
	case EnvGNU:
		return "gnu"
	case EnvMSVC:
		return "msvc"
	case EnvAndroid:
		return "android"
	case EnvMusl:
		return "musl"
	default:
		return "unknown"
	}
}

// Target identifies a compilation target. The zero value is a fully unknown
// target; lowering treats it like any other non-x86, non-AArch64 triple.
type Target struct {
	Arch Arch
	OS   OS
	Env  Env
}

// AnyX86 reports whether the target is 32- or 64-bit x86.
func (t Target) AnyX86() bool {
	return t.Arch == ArchX86 || t.Arch == ArchX86_64
}

// AnyAArch64 reports whether the target is AArch64 in either endianness.
func (t Target) AnyAArch64() bool {
	return t.Arch == ArchAArch64 || t.Arch == ArchAArch64_BE
}

// IsWindowsMSVC reports whether the target uses the Microsoft-compatible ABI.
func (t Target) IsWindowsMSVC() bool {
	return t.OS == OSWindows && t.Env == EnvMSVC
}

// IsDarwin reports whether the target runs an Apple OS.
func (t Target) IsDarwin() bool {
	return t.OS == OSDarwin
}

// IsAndroid reports whether the target uses the Android environment.
func (t Target) IsAndroid() bool {
	return t.Env == EnvAndroid
}

// PtrSize returns the pointer width in bytes.
func (t Target) PtrSize() int {
	if t.Arch == ArchX86 {
		return 4
	}
	return 8
}

// Triple renders the canonical arch-os-env spelling.
func (t Target) Triple() string {
	parts := []string{t.Arch.String(), t.OS.String()}
	if t.Env != EnvUnknown {
		parts = append(parts, t.Env.String())
	}
	return strings.Join(parts, "-")
}

func (t Target) String() string {
	return t.Triple()
}

// Parse interprets a loose target triple such as "x86_64-linux-gnu",
// "arm64-apple-darwin" or "x86_64-pc-windows-msvc". Vendor components are
// skipped; unrecognized architecture, OS and environment components parse as
// unknown rather than failing, since the ABI predicates only need the parts
// they test. Only an empty triple is an error.
func Parse(triple string) (Target, error) {
	triple = strings.TrimSpace(strings.ToLower(triple))
	if triple == "" {
		return Target{}, fmt.Errorf("target: empty triple")
	}
	parts := strings.Split(triple, "-")

	var t Target
	switch parts[0] {
	case "x86_64", "amd64", "x64":
		t.Arch = ArchX86_64
	case "i386", "i486", "i586", "i686", "x86":
		t.Arch = ArchX86
	case "aarch64", "arm64":
		t.Arch = ArchAArch64
	case "aarch64_be", "arm64_be":
		t.Arch = ArchAArch64_BE
	default:
		// Unrecognized architectures stay ArchUnknown; lowering treats them
		// with the conservative non-x86, non-AArch64 ABI defaults.
		t.Arch = ArchUnknown
	}

	for _, p := range parts[1:] {
		switch p {
		case "linux":
			t.OS = OSLinux
		case "windows", "win32":
			t.OS = OSWindows
		case "darwin", "macos", "macosx", "ios":
			t.OS = OSDarwin
		case "freebsd":
			t.OS = OSFreeBSD
		case "gnu", "gnueabi", "gnueabihf":
			t.Env = EnvGNU
		case "msvc":
			t.Env = EnvMSVC
		case "android", "androideabi":
			t.OS = OSLinux
			t.Env = EnvAndroid
		case "musl", "musleabi", "musleabihf":
			t.Env = EnvMusl
		}
	}
	return t, nil
}

// MustParse is Parse for triples known at compile time.
func MustParse(triple string) Target {
	t, err := Parse(triple)
	if err != nil {
		panic(err)
	}
	return t
}
