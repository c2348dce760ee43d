//go:build unix

package scan

import "golang.org/x/sys/unix"

// deviceID returns the device number a path lives on. Used to keep a
// scan on the same filesystem as its root.
func deviceID(path string) (uint64, bool) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return 0, false
	}
	return uint64(st.Dev), true
}
