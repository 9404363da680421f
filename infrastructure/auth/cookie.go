package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const sessionCookieBaseName = "next-auth.session-token"
const secureSessionCookieName = "__Secure-" + sessionCookieBaseName

const sessionCookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// SessionCookieName selects the cookie name for the current environment.
// Issuance and clearance both go through this so a production logout clears
// the cookie it actually set.
func SessionCookieName() string {
	if isProduction() {
		return secureSessionCookieName
	}
	return sessionCookieBaseName
}

func SetSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName(), token, sessionCookieMaxAge, "/", "", isProduction(), true)
}

func ClearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName(), "", -1, "/", "", isProduction(), true)
}

// ReadSessionCookie checks both cookie names so a token set under one
// environment is still honored if the deployment mode changes underneath it.
func ReadSessionCookie(req *http.Request) string {
	if cookie, err := req.Cookie(sessionCookieBaseName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if cookie, err := req.Cookie(secureSessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

func isProduction() bool {
	return os.Getenv("ENV") == "prod"
}
