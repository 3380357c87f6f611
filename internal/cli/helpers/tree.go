package helpers

import "strings"

// IndentKey renders a call-tree node name at depth for table output:
// children get a "└─" connector under their parent.
func IndentKey(key string, depth int) string {
	if depth <= 0 {
		return key
	}
	return strings.Repeat("  ", depth-1) + "└─ " + key
}
