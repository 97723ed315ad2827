// Package utils holds small helpers shared by the config, server and cli
// layers: filesystem checks and input validation.
package utils

import "fmt"

// ValidatePattern rejects patterns the server should not forward to the
// index. Empty is fine (it matches at the root by convention); only
// oversize patterns are refused.
func ValidatePattern(pattern string, maxLen int) error {
	if maxLen > 0 && len(pattern) > maxLen {
		return fmt.Errorf("pattern exceeds maximum length of %d bytes", maxLen)
	}
	return nil
}

// ValidateText rejects texts too large for the configured limit. The tree
// has its own hard cap; this keeps a misconfigured client from tying up
// the process long before that cap is reached.
func ValidateText(text string, maxLen int) error {
	if maxLen > 0 && len(text) > maxLen {
		return fmt.Errorf("text exceeds maximum length of %d bytes", maxLen)
	}
	return nil
}

// Truncate shortens s for log output, marking the cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
