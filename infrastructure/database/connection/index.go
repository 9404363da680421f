package connection

import (
	"taskdesk.io/infrastructure/database/connection/cache"
	"taskdesk.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}
