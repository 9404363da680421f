package middlewares

import "testing"

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		path string
		want RouteClass
	}{
		{"/", RouteClass{IsPublic: true}},
		{"/login", RouteClass{IsPublic: true}},
		{"/register", RouteClass{IsPublic: true}},
		{"/about", RouteClass{IsPublic: true}},
		{"/contact", RouteClass{IsPublic: true}},
		{"/api/login", RouteClass{IsPublicAPI: true}},
		{"/api/logout", RouteClass{IsPublicAPI: true}},
		{"/api/register", RouteClass{IsPublicAPI: true}},
		{"/api/workspaces", RouteClass{IsPublicAPI: true}},
		{"/api/workspaces/01J0WS", RouteClass{IsPublicAPI: true}},
		{"/dashboard", RouteClass{IsProtected: true}},
		{"/dashboard/settings", RouteClass{IsProtected: true}},
		{"/dashboard/reports", RouteClass{IsProtected: true, IsAdminOnly: true}},
		{"/dashboard/reports/weekly", RouteClass{IsProtected: true, IsAdminOnly: true}},
		{"/dashboard/task", RouteClass{IsProtected: true, IsAdminOnly: true}},
		// taskInfo sits under an admin prefix but is deliberately public.
		{"/dashboard/task/taskInfo", RouteClass{IsPublic: true, IsProtected: true, IsAdminOnly: true}},
		{"/dashboard/task/taskInfo/01J0TASK", RouteClass{IsPublic: true, IsProtected: true, IsAdminOnly: true}},
		// Prefix matching requires a path separator.
		{"/dashboards", RouteClass{}},
		{"/loginx", RouteClass{}},
		{"/api/tasks", RouteClass{}},
		{"/unknown", RouteClass{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ClassifyPath(tt.path); got != tt.want {
				t.Errorf("ClassifyPath(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMatchesPathRootDoesNotMatchEverything(t *testing.T) {
	if MatchesPath("/anything", []string{"/"}) {
		t.Error("root pattern must only match the root path exactly")
	}
	if !MatchesPath("/", []string{"/"}) {
		t.Error("root pattern must match the root path")
	}
}
