package entities

import (
	"time"

	"taskdesk.io/application/utils"
)

type Notification struct {
	UserID      string  `bson:"userId" json:"userId"`
	Title       string  `bson:"title" json:"title"`
	Message     string  `bson:"message" json:"message"`
	IsRead      bool    `bson:"isRead" json:"isRead"`
	RelatedTask *string `bson:"relatedTask" json:"relatedTask"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model Notification) ParseModel() any {
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
