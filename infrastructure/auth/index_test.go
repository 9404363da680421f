package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskdesk.io/application/utils"
	"taskdesk.io/entities"
)

const testSigningKey = "unit-test-signing-key"

func TestAuthTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", testSigningKey)

	workspaceID := "01J0TESTWORKSPACE"
	workspaceName := "Acme Inc"
	issued := IdentityClaims{
		UserID:      "01J0TESTUSER",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Username:    "ada",
		Role:        entities.AdminRole,
		WorkspaceID: &workspaceID,
		Workspace:   &workspaceName,
	}

	token, err := GenerateAuthToken(issued)
	if err != nil {
		t.Fatalf("GenerateAuthToken returned error: %v", err)
	}

	claims, err := DecodeAuthToken(*token)
	if err != nil {
		t.Fatalf("DecodeAuthToken returned error: %v", err)
	}

	if claims.UserID != issued.UserID {
		t.Errorf("UserID = %q, want %q", claims.UserID, issued.UserID)
	}
	if claims.Email != issued.Email {
		t.Errorf("Email = %q, want %q", claims.Email, issued.Email)
	}
	if claims.Role != entities.AdminRole {
		t.Errorf("Role = %q, want %q", claims.Role, entities.AdminRole)
	}
	if claims.WorkspaceID == nil || *claims.WorkspaceID != workspaceID {
		t.Errorf("WorkspaceID = %v, want %q", claims.WorkspaceID, workspaceID)
	}
	if claims.Workspace == nil || *claims.Workspace != workspaceName {
		t.Errorf("Workspace = %v, want %q", claims.Workspace, workspaceName)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("ExpiresAt not set on issued token")
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining > TokenTTL || remaining < TokenTTL-time.Minute {
		t.Errorf("token lifetime = %v, want about %v", remaining, TokenTTL)
	}
}

func TestDecodeAuthTokenRejections(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", testSigningKey)

	valid, err := GenerateAuthToken(IdentityClaims{
		UserID: "01J0TESTUSER",
		Role:   entities.MemberRole,
	})
	if err != nil {
		t.Fatalf("GenerateAuthToken returned error: %v", err)
	}

	expired := signWithExpiry(t, []byte(testSigningKey), time.Now().Add(-time.Hour))
	foreignKey := signWithExpiry(t, []byte("some-other-key"), time.Now().Add(time.Hour))

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		UserID: "01J0TESTUSER",
	}).SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("signing claims without expiry: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"tampered payload", (*valid)[:len(*valid)-2] + "xx"},
		{"expired", expired},
		{"wrong signing key", foreignKey},
		{"missing expiry claim", noExpiry},
		{"garbage", "not-a-token"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := DecodeAuthToken(tt.token)
			if err != ErrInvalidToken {
				t.Errorf("error = %v, want ErrInvalidToken", err)
			}
			if claims != nil {
				t.Errorf("claims = %+v, want nil", claims)
			}
		})
	}
}

func signWithExpiry(t *testing.T, key []byte, expiry time.Time) string {
	t.Helper()
	claims := IdentityClaims{
		UserID: utils.GenerateULIDString(),
		Role:   entities.MemberRole,
	}
	claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
	claims.ExpiresAt = jwt.NewNumericDate(expiry)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}
