package repository

import (
	"sync"

	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/database/connection/datastore"
	"taskdesk.io/infrastructure/database/repository/mongo"
)

var notificationOnce = sync.Once{}

var notificationRepository mongo.MongoRepository[entities.Notification]

var NotificationRepo = func() Repository[entities.Notification] {
	notificationOnce.Do(func() {
		notificationRepository = mongo.MongoRepository[entities.Notification]{Model: datastore.NotificationModel}
	})
	return &notificationRepository
}
