//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures fall back to scalar mode.
	setScalarMode()
}

// HasFMA always reports false outside amd64 and arm64.
func HasFMA() bool {
	return false
}
