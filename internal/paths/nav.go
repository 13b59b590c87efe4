package paths

import "path/filepath"

// GoUp returns the parent of current. At the filesystem root the
// location does not change.
func GoUp(current string) string {
	return filepath.Dir(filepath.Clean(current))
}

// Resolve returns p as an absolute, cleaned path. Relative paths are
// taken relative to base.
func Resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
