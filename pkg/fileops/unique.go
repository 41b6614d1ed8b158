package fileops

import (
	"fmt"
	"path/filepath"
	"time"
)

// uniqueNameAttempts caps the counter search before degrading to a
// timestamp-qualified name.
const uniqueNameAttempts = 10000

// UniquePath returns a path inside destDir that does not collide with any
// existing entry. If destDir/filename is free it is returned unchanged.
// Otherwise candidates of the form "stem_1.ext", "stem_2.ext", ... are
// probed against the live filesystem and the first free one wins.
//
// After 10000 occupied candidates the function does not fail: it appends
// the current wall-clock milliseconds to the counter-suffixed name and
// returns that, trading a theoretical collision risk for termination.
//
// The result is only valid as long as destDir is not concurrently written
// by another process; no caching happens across calls.
func UniquePath(destDir, filename string) string {
	base := filepath.Join(destDir, filename)
	if !Exists(base) {
		return base
	}

	stem, ext := splitName(filename)

	for n := 1; n <= uniqueNameAttempts; n++ {
		candidate := filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if !Exists(candidate) {
			return candidate
		}
	}

	millis := time.Now().UnixMilli()
	fallback := fmt.Sprintf("%s_%d_%d%s", stem, uniqueNameAttempts+1, millis, ext)
	return filepath.Join(destDir, fallback)
}
