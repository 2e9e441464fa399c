package ffmpeg

import "strings"

// Quote wraps s in single quotes for POSIX shells, escaping embedded
// single quotes. Quoting is unconditional so generated commands look the
// same regardless of the characters a path happens to contain.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
