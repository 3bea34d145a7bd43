package transport

import (
	"os"
	"strings"
)

// RelayURLEnv names the environment variable that points at the
// same-origin relay endpoint. When unset, relay-flagged configs fall
// back to their configured base URL unchanged.
const RelayURLEnv = "LLMGATE_RELAY_URL"

// RelayBaseURL returns the base URL a relay-flagged config should use.
// The relay is a transparent forwarder: only the transport endpoint
// changes, so the vendor name is appended as a path segment for the
// relay to route on. With the relay disabled or unconfigured, the
// original base URL is returned.
func RelayBaseURL(baseURL, vendor string, useRelay bool) string {
	if !useRelay {
		return baseURL
	}
	relay := strings.TrimRight(os.Getenv(RelayURLEnv), "/")
	if relay == "" {
		return baseURL
	}
	vendor = strings.Trim(strings.ToLower(vendor), "/")
	if vendor == "" {
		return relay
	}
	return relay + "/" + vendor
}
