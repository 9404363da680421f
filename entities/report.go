package entities

import (
	"time"

	"taskdesk.io/application/utils"
)

// Status is a plain active/inactive flag, not a workflow state.
type Report struct {
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
	Author  string `bson:"author" json:"author"`
	Type    string `bson:"type" json:"type"`
	Status  bool   `bson:"status" json:"status"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model Report) ParseModel() any {
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
