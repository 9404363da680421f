package dto

import "taskdesk.io/entities"

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type WorkspaceDataDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
}

type RegisterDTO struct {
	FirstName string            `json:"firstName" validate:"required,max=100"`
	LastName  string            `json:"lastName" validate:"required,max=100"`
	Username  string            `json:"username" validate:"required,max=100"`
	Email     string            `json:"email" validate:"required,email,max=100"`
	Password  string            `json:"password" validate:"required,password"`
	Role      entities.UserRole `json:"role" validate:"required,oneof=Admin Member"`

	// WorkspaceData is required when registering an Admin; WorkspaceID when
	// registering a Member.
	WorkspaceData *WorkspaceDataDTO `json:"workspaceData"`
	WorkspaceID   *string           `json:"workspaceId"`
}
