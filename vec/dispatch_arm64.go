//go:build arm64

package vec

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		return
	}

	// NEON (ASIMD) is part of the ARMv8-A base architecture, so this is
	// effectively always true on arm64. The check is kept for consistency
	// with the amd64 path.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
	} else {
		currentLevel = DispatchScalar
		currentWidth = 16
	}
}
