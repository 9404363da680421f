package server_response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRespondMergesPayloadAtTopLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	Responder.Respond(ctx, http.StatusOK, "Login successful", map[string]any{
		"JWT_Token": "abc",
		"user":      map[string]any{"id": "01J0USER"},
	}, nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["message"] != "Login successful" {
		t.Errorf("message = %v", body["message"])
	}
	if body["JWT_Token"] != "abc" {
		t.Errorf("JWT_Token = %v", body["JWT_Token"])
	}
	user, ok := body["user"].(map[string]any)
	if !ok || user["id"] != "01J0USER" {
		t.Errorf("user = %v", body["user"])
	}
}

func TestRespondIncludesErrorMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	Responder.Respond(ctx, http.StatusBadRequest, "All fields are required", nil, []error{
		errors.New("Email failed validation for rule required"),
	})

	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 1 {
		t.Fatalf("errors = %v", body["errors"])
	}
	if errs[0] != "Email failed validation for rule required" {
		t.Errorf("errors[0] = %v", errs[0])
	}
}

func TestRespondRawWritesBareDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	Responder.RespondRaw(ctx, http.StatusOK, []map[string]any{{"id": "01J0WS", "name": "Acme"}})

	var body []map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(body) != 1 || body[0]["name"] != "Acme" {
		t.Errorf("body = %v", body)
	}
}
