//go:build windows

package scan

// deviceID is unavailable on Windows; filesystem-boundary pruning is
// disabled there and every path reports no device.
func deviceID(path string) (uint64, bool) {
	return 0, false
}
