package entities

import (
	"time"

	"taskdesk.io/application/utils"
)

type UserRole string

const (
	AdminRole  UserRole = "Admin"
	MemberRole UserRole = "Member"
)

// This represents a user signed up to TaskDesk. A user belongs to at most
// one workspace, referenced by WorkspaceID.
type User struct {
	FirstName   string   `bson:"firstName" json:"firstName"`
	LastName    string   `bson:"lastName" json:"lastName"`
	Username    string   `bson:"username" json:"username"`
	Email       string   `bson:"email" json:"email"`
	Password    string   `bson:"password" json:"-"`
	Role        UserRole `bson:"role" json:"role"`
	WorkspaceID *string  `bson:"workspaceId" json:"workspaceId"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model User) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	model.UpdatedAt = now
	return &model
}
