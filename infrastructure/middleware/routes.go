package middlewares

import (
	"strings"
)

// Route tables are deployment configuration: static prefix sets evaluated
// on every request. A path matches a pattern on exact equality or when it
// sits strictly below the pattern ("/dashboard" matches "/dashboard/x" but
// not "/dashboards").

// Public routes that don't require authentication
var PublicRoutes = []string{
	"/login",
	"/register",
	"/",
	"/about",
	"/contact",
	"/dashboard/task/taskInfo",
}

// Public API routes that don't require authentication
var PublicAPIRoutes = []string{
	"/api/login",
	"/api/logout",
	"/api/register",
	"/api/workspaces",
}

// Protected routes that require authentication
var ProtectedRoutes = []string{
	"/dashboard",
}

// Admin-only routes
var AdminRoutes = []string{
	"/dashboard/reports",
	"/dashboard/task",
}

type RouteClass struct {
	IsPublic    bool
	IsPublicAPI bool
	IsProtected bool
	IsAdminOnly bool
}

func MatchesPath(pathname string, patterns []string) bool {
	for _, pattern := range patterns {
		if pathname == pattern {
			return true
		}
		if strings.HasPrefix(pathname, pattern+"/") {
			return true
		}
	}
	return false
}

// ClassifyPath computes all four dispositions independently. A path can
// match several sets; the auth gate's evaluation order (public first)
// resolves the ambiguity.
func ClassifyPath(pathname string) RouteClass {
	return RouteClass{
		IsPublic:    MatchesPath(pathname, PublicRoutes),
		IsPublicAPI: MatchesPath(pathname, PublicAPIRoutes),
		IsProtected: MatchesPath(pathname, ProtectedRoutes),
		IsAdminOnly: MatchesPath(pathname, AdminRoutes),
	}
}
