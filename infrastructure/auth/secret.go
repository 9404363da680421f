package auth

import (
	"os"
)

// SigningKey returns the process-wide HMAC key for auth tokens. A missing
// key is a fatal configuration error: tokens signed with an empty key would
// be forgeable, so there is no degraded mode.
func SigningKey() []byte {
	key := os.Getenv("JWT_SIGNING_KEY")
	if key == "" {
		panic("JWT_SIGNING_KEY is not set")
	}
	return []byte(key)
}
