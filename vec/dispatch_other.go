//go:build !amd64 && !arm64

package vec

func init() {
	// Other architectures use the 16-byte scalar-mode width.
	currentLevel = DispatchScalar
	currentWidth = 16
}
