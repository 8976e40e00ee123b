package tosec

import (
	"regexp"
	"strings"
)

// versionPattern matches "v1.2", "V2", "rev1.01" style words.
var versionPattern = regexp.MustCompile(`(?i)^(v|rev)[0-9][0-9.]*$`)

// classifyTitle pulls the version word out of the title segment. The last
// matching word wins; the other words keep their order.
func classifyTitle(segment string) (title, version string) {
	words := strings.Fields(segment)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if versionPattern.MatchString(w) {
			version = w
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " "), version
}
