package repository

import (
	"sync"

	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/database/connection/datastore"
	"taskdesk.io/infrastructure/database/repository/mongo"
)

var reportOnce = sync.Once{}

var reportRepository mongo.MongoRepository[entities.Report]

var ReportRepo = func() Repository[entities.Report] {
	reportOnce.Do(func() {
		reportRepository = mongo.MongoRepository[entities.Report]{Model: datastore.ReportModel}
	})
	return &reportRepository
}
