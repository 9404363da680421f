package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSessionCookieName(t *testing.T) {
	t.Setenv("ENV", "dev")
	if got := SessionCookieName(); got != "next-auth.session-token" {
		t.Errorf("dev cookie name = %q", got)
	}

	t.Setenv("ENV", "prod")
	if got := SessionCookieName(); got != "__Secure-next-auth.session-token" {
		t.Errorf("prod cookie name = %q", got)
	}
}

func TestSetAndReadSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ENV", "dev")

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	SetSessionCookie(ctx, "token-value")

	response := recorder.Result()
	cookies := response.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != "next-auth.session-token" {
		t.Errorf("cookie name = %q", cookie.Name)
	}
	if cookie.Value != "token-value" {
		t.Errorf("cookie value = %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("cookie is not HttpOnly")
	}
	if cookie.Path != "/" {
		t.Errorf("cookie path = %q", cookie.Path)
	}
	if cookie.MaxAge != 30*24*60*60 {
		t.Errorf("cookie max age = %d", cookie.MaxAge)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie SameSite = %v", cookie.SameSite)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	if got := ReadSessionCookie(req); got != "token-value" {
		t.Errorf("ReadSessionCookie = %q", got)
	}
}

func TestReadSessionCookieHonorsSecureName(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "__Secure-next-auth.session-token", Value: "secure-token"})
	if got := ReadSessionCookie(req); got != "secure-token" {
		t.Errorf("ReadSessionCookie = %q", got)
	}
}

func TestClearSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ENV", "prod")

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ClearSessionCookie(ctx)

	setCookie := recorder.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "__Secure-next-auth.session-token=") {
		t.Errorf("clearance targets wrong cookie: %q", setCookie)
	}
	if !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("clearance does not expire the cookie: %q", setCookie)
	}
	if !strings.Contains(setCookie, "Secure") {
		t.Errorf("prod clearance missing Secure attribute: %q", setCookie)
	}
}
