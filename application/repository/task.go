package repository

import (
	"sync"

	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/database/connection/datastore"
	"taskdesk.io/infrastructure/database/repository/mongo"
)

var taskOnce = sync.Once{}

var taskRepository mongo.MongoRepository[entities.Task]

var TaskRepo = func() Repository[entities.Task] {
	taskOnce.Do(func() {
		taskRepository = mongo.MongoRepository[entities.Task]{Model: datastore.TaskModel}
	})
	return &taskRepository
}
