package startup

import (
	"taskdesk.io/infrastructure/auth"
	"taskdesk.io/infrastructure/database"
	"taskdesk.io/infrastructure/database/connection/datastore"
	"taskdesk.io/infrastructure/logger"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	auth.SigningKey() // fail fast on missing signing key
	database.SetUpDatabase()
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
