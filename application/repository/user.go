package repository

import (
	"sync"

	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/database/connection/datastore"
	"taskdesk.io/infrastructure/database/repository/mongo"
)

var userOnce = sync.Once{}

var userRepository mongo.MongoRepository[entities.User]

var UserRepo = func() Repository[entities.User] {
	userOnce.Do(func() {
		userRepository = mongo.MongoRepository[entities.User]{Model: datastore.UserModel}
	})
	return &userRepository
}
