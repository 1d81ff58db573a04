package vos

import "path"

// Resolve normalizes name against the working directory cwd, producing an
// absolute, cleaned path. Relative names are joined onto cwd; "." and ".."
// segments are collapsed; ".." never escapes past the root.
func Resolve(cwd, name string) string {
	if cwd == "" {
		cwd = "/"
	}
	if !path.IsAbs(name) {
		name = path.Join(cwd, name)
	}
	cleaned := path.Clean(name)
	if !path.IsAbs(cleaned) {
		// path.Clean of a relative ".." chain; clamp to the root.
		return "/"
	}
	return cleaned
}
