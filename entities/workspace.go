package entities

import (
	"time"

	"taskdesk.io/application/utils"
)

// Workspace groups users into a tenant. Exactly one admin owns the
// workspace; AdminID is backfilled after the admin user is created so it
// can be empty for a freshly-registered workspace.
type Workspace struct {
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	AdminID     *string  `bson:"adminId" json:"adminId"`
	MemberIDs   []string `bson:"memberIds" json:"memberIds"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model Workspace) ParseModel() any {
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
