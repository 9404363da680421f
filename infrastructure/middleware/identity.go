package middlewares

import (
	"encoding/json"
	"net/http"

	"taskdesk.io/application/interfaces"
	"taskdesk.io/infrastructure/logger"
)

// ParseIdentityHeader decodes the identity payload the auth gate attached
// to the request. A missing or unparseable header degrades to a nil
// identity (anonymous); it must never take a handler down.
func ParseIdentityHeader(header http.Header) *interfaces.IdentityData {
	raw := header.Get(IdentityHeaderName)
	if raw == "" {
		return nil
	}
	var identity interfaces.IdentityData
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		logger.Warning("unparseable identity header, treating request as anonymous", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil
	}
	return &identity
}
