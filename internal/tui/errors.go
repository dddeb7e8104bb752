package tui

import "strings"

// humanizeNetworkError collapses the many shapes of a transport failure into
// a single readable message. Anything else is shown as returned, so server
// validation messages reach the user verbatim.
func humanizeNetworkError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Server is unreachable, check your connection"
	}

	return err.Error()
}
