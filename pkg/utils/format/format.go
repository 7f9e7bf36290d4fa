package format

import "fmt"

// Itoa32 formats an int32 as a string.
func Itoa32(i int32) string {
	return fmt.Sprintf("%d", i)
}

// Truncate returns s truncated to max characters with "..." suffix.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
