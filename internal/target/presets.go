package target

// Builtin target presets, primarily for the driver CLI and tests.

func X86_64LinuxGNU() Target {
	return Target{Arch: ArchX86_64, OS: OSLinux, Env: EnvGNU}
}

func X86_64WindowsMSVC() Target {
	return Target{Arch: ArchX86_64, OS: OSWindows, Env: EnvMSVC}
}

func X86_64Android() Target {
	return Target{Arch: ArchX86_64, OS: OSLinux, Env: EnvAndroid}
}

func AArch64LinuxGNU() Target {
	return Target{Arch: ArchAArch64, OS: OSLinux, Env: EnvGNU}
}

func AArch64Darwin() Target {
	return Target{Arch: ArchAArch64, OS: OSDarwin}
}

func AArch64Android() Target {
	return Target{Arch: ArchAArch64, OS: OSLinux, Env: EnvAndroid}
}

func X86LinuxGNU() Target {
	return Target{Arch: ArchX86, OS: OSLinux, Env: EnvGNU}
}

// Presets returns every builtin target in a stable order.
func Presets() []Target {
	return []Target{
		X86_64LinuxGNU(),
		X86_64WindowsMSVC(),
		X86_64Android(),
		X86LinuxGNU(),
		AArch64LinuxGNU(),
		AArch64Darwin(),
		AArch64Android(),
	}
}
