package types

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_REQUEST = "req"
	UUID_PREFIX_SESSION = "sess"
)

// GenerateUUID returns a lowercase ULID
func GenerateUUID() string {
	return strings.ToLower(ulid.Make().String())
}

// GenerateUUIDWithPrefix returns a ULID prefixed with prefix, e.g. "req_01hx..."
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return prefix + "_" + GenerateUUID()
}
