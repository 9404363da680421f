package middlewares

import (
	"net/http"
	"testing"
)

func TestParseIdentityHeader(t *testing.T) {
	workspaceID := "01J0WS"

	tests := []struct {
		name   string
		raw    string
		wantID string
		isNil  bool
	}{
		{
			name:   "full identity",
			raw:    `{"id":"01J0USER","firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","username":"ada","role":"Admin","workspaceId":"01J0WS"}`,
			wantID: "01J0USER",
		},
		{name: "missing header", raw: "", isNil: true},
		{name: "malformed json", raw: "{not-json", isNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.raw != "" {
				header.Set(IdentityHeaderName, tt.raw)
			}
			identity := ParseIdentityHeader(header)
			if tt.isNil {
				if identity != nil {
					t.Fatalf("identity = %+v, want nil", identity)
				}
				return
			}
			if identity == nil {
				t.Fatal("identity is nil")
			}
			if identity.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", identity.ID, tt.wantID)
			}
			if identity.Role != "Admin" {
				t.Errorf("Role = %q, want Admin", identity.Role)
			}
			if identity.WorkspaceID == nil || *identity.WorkspaceID != workspaceID {
				t.Errorf("WorkspaceID = %v, want %q", identity.WorkspaceID, workspaceID)
			}
		})
	}
}
