package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"taskdesk.io/infrastructure/database"
)

// Repository is the data-access surface controllers and usecases depend
// on. Production code backs it with MongoRepository; the accessor funcs
// below are variables so tests can swap in in-memory fakes.
type Repository[T database.BaseModel] interface {
	CreateOne(ctx context.Context, payload T) (*T, error)
	FindByID(id string, opts ...*options.FindOneOptions) (*T, error)
	FindOneByFilter(filter map[string]interface{}, opts ...*options.FindOneOptions) (*T, error)
	FindMany(filter map[string]interface{}, opts ...*options.FindOptions) (*[]T, error)
	CountDocs(filter map[string]interface{}) (int64, error)
	UpdatePartialByID(id string, payload map[string]interface{}) (bool, error)
	UpdatePartialByFilter(filter map[string]interface{}, payload map[string]interface{}) (bool, error)
	UpdateWithOperatorByID(id string, update map[string]interface{}) (bool, error)
	DeleteByID(id string) (int64, error)
}
