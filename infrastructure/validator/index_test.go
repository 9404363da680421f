package validator

import (
	"strings"
	"testing"

	"taskdesk.io/application/controller/dto"
	"taskdesk.io/entities"
)

func validRegisterPayload() dto.RegisterDTO {
	workspaceID := "01J0WS"
	return dto.RegisterDTO{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Username:    "ada",
		Email:       "ada@example.com",
		Password:    "s3curepass",
		Role:        entities.MemberRole,
		WorkspaceID: &workspaceID,
	}
}

func TestValidateRegisterPayload(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.RegisterDTO)
		wantErr string
	}{
		{"valid", func(p *dto.RegisterDTO) {}, ""},
		{"missing email", func(p *dto.RegisterDTO) { p.Email = "" }, "Email"},
		{"malformed email", func(p *dto.RegisterDTO) { p.Email = "not-an-email" }, "Email"},
		{"short password", func(p *dto.RegisterDTO) { p.Password = "a1" }, "Password"},
		{"password without digit", func(p *dto.RegisterDTO) { p.Password = "onlyletters" }, "Password"},
		{"password without letter", func(p *dto.RegisterDTO) { p.Password = "12345678" }, "Password"},
		{"unknown role", func(p *dto.RegisterDTO) { p.Role = "Owner" }, "Role"},
		{"missing first name", func(p *dto.RegisterDTO) { p.FirstName = "" }, "FirstName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRegisterPayload()
			tt.mutate(&payload)
			errs := ValidatorInstance.ValidateStruct(payload)
			if tt.wantErr == "" {
				if errs != nil {
					t.Fatalf("unexpected validation errors: %v", *errs)
				}
				return
			}
			if errs == nil {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, err := range *errs {
				if strings.Contains(err.Error(), tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error mentions %q in %v", tt.wantErr, *errs)
			}
		})
	}
}

func TestPasswordRule(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"s3curepass", true},
		{"abc123xy", true},
		{"short1", false},
		{"longenoughbutnodigits", false},
		{"123456789", false},
	}
	for _, tt := range tests {
		err := ValidatorInstance.ValidateValue(tt.password, "password")
		if (err == nil) != tt.valid {
			t.Errorf("password %q: valid = %v, want %v", tt.password, err == nil, tt.valid)
		}
	}
}
