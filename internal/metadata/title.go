package metadata

import (
	"regexp"
	"strings"
)

const (
	titlePrefix   = "title:"
	headingPrefix = "# "
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// InferTitle scans slides content top to bottom, skipping blank lines, and
// returns the title from the first line that starts with "title:" or "# ".
// The first such line decides: if its value trims to empty, the result is ""
// and later lines are not consulted.
func InferTitle(content string) string {
	for _, line := range lineBreak.Split(content, -1) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, titlePrefix) {
			return strings.TrimSpace(trimmed[len(titlePrefix):])
		}

		if strings.HasPrefix(trimmed, headingPrefix) {
			return strings.TrimSpace(trimmed[len(headingPrefix):])
		}
	}
	return ""
}
