package vision

import (
	"errors"
	"net"
	"strings"
)

var transientMarkers = []string{
	"429",
	"rate limit",
	"rate_limit",
	"quota",
	"overloaded",
	"too many requests",
	"timeout",
	"connection reset",
	"connection refused",
	"temporarily unavailable",
	"502",
	"503",
	"529",
}

// isRetryable reports whether the remote call failed in a way worth retrying.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
