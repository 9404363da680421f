package repository

import (
	"sync"

	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/database/connection/datastore"
	"taskdesk.io/infrastructure/database/repository/mongo"
)

var workspaceOnce = sync.Once{}

var workspaceRepository mongo.MongoRepository[entities.Workspace]

var WorkspaceRepo = func() Repository[entities.Workspace] {
	workspaceOnce.Do(func() {
		workspaceRepository = mongo.MongoRepository[entities.Workspace]{Model: datastore.WorkspaceModel}
	})
	return &workspaceRepository
}
