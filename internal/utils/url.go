package utils

import (
	"net/url"
	"strings"
)

// GetHostName extracts the host from a story URL for display next to the
// title. Scheme-less inputs like "example.com/a" are accepted, and a leading
// "www." is stripped.
func GetHostName(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	return strings.TrimPrefix(u.Hostname(), "www.")
}
