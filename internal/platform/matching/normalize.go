package matching

import "strings"

// Normalize converts a free-text name into its comparable form: lowercased,
// trimmed, with every internal run of whitespace collapsed to one space.
// Empty or all-whitespace input normalizes to "".
func Normalize(value string) string {
	fields := strings.Fields(strings.ToLower(value))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}
