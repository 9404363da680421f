package middlewares

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/auth"
	"taskdesk.io/infrastructure/logger"
	server_response "taskdesk.io/infrastructure/serverResponse"
)

// IdentityHeaderName is the propagation channel between the gate and
// downstream handlers. The gate owns writes to it; anything a client sent
// under this name is discarded before the gate decides.
const IdentityHeaderName = "User"

const identityProviderPrefix = "/api/auth"

const loginPage = "/login"
const registerPage = "/register"
const dashboardPage = "/dashboard"

// AuthGate intercepts every request once. Decision order is fixed:
// bypass, token extraction, authenticated-on-auth-page redirect, route
// classification, public short-circuit, auth requirement, verification,
// role enforcement, identity propagation, permissive default.
func AuthGate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pathname := ctx.Request.URL.Path

		// Clients must not be able to spoof the verified identity.
		ctx.Request.Header.Del(IdentityHeaderName)

		if strings.HasPrefix(pathname, identityProviderPrefix) {
			ctx.Next()
			return
		}

		token := ExtractToken(ctx.Request)

		if token != "" && (pathname == loginPage || pathname == registerPage) {
			if _, err := auth.DecodeAuthToken(token); err == nil {
				ctx.Redirect(http.StatusTemporaryRedirect, dashboardPage)
				ctx.Abort()
				return
			}
			// Invalid token: treat as anonymous and let them reach the page.
		}

		class := ClassifyPath(pathname)

		if class.IsPublic || class.IsPublicAPI {
			ctx.Next()
			return
		}

		isAPIRoute := strings.HasPrefix(pathname, "/api")
		requiresAuth := class.IsProtected || isAPIRoute

		if requiresAuth && token == "" {
			if !isAPIRoute {
				ctx.Redirect(http.StatusTemporaryRedirect, loginPage)
				ctx.Abort()
				return
			}
			server_response.Responder.Respond(ctx, http.StatusUnauthorized, "Unauthorized, token missing", nil, nil)
			return
		}

		if token != "" {
			claims, err := auth.DecodeAuthToken(token)
			if err != nil {
				if !isAPIRoute {
					ctx.Redirect(http.StatusTemporaryRedirect, loginPage)
					ctx.Abort()
					return
				}
				server_response.Responder.Respond(ctx, http.StatusUnauthorized, "Unauthorized, invalid token", nil, nil)
				return
			}

			serialized, err := json.Marshal(claims)
			if err != nil {
				logger.Error("auth gate failed to serialize verified claims", logger.LoggerOptions{
					Key:  "error",
					Data: err,
				})
				if !isAPIRoute {
					ctx.Redirect(http.StatusTemporaryRedirect, loginPage)
					ctx.Abort()
					return
				}
				server_response.Responder.Respond(ctx, http.StatusInternalServerError, "Internal server error", nil, nil)
				return
			}

			if claims.Role == entities.MemberRole && class.IsAdminOnly {
				ctx.Redirect(http.StatusTemporaryRedirect, dashboardPage)
				ctx.Abort()
				return
			}

			ctx.Request.Header.Set(IdentityHeaderName, string(serialized))
			ctx.Next()
			return
		}

		// Unclassified, non-API, non-protected: deliberate permissive default.
		ctx.Next()
	}
}

// ExtractToken reads the caller's credential. The session cookie takes
// precedence over the Authorization header when both are present.
func ExtractToken(req *http.Request) string {
	if cookieToken := auth.ReadSessionCookie(req); cookieToken != "" {
		return cookieToken
	}

	headerToken := req.Header.Get("Authorization")
	if headerToken == "" {
		return ""
	}
	if strings.HasPrefix(headerToken, "Bearer") {
		parts := strings.SplitN(headerToken, " ", 2)
		if len(parts) == 2 {
			return parts[1]
		}
		return ""
	}
	return headerToken
}
