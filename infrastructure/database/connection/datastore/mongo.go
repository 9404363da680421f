package datastore

import (
	"context"
	"os"
	"time"

	"taskdesk.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserModel         *mongo.Collection
	WorkspaceModel    *mongo.Collection
	TaskModel         *mongo.Collection
	ReportModel       *mongo.Collection
	NotificationModel *mongo.Collection
)

var client *mongo.Client

func ConnectToDatabase() {
	connectMongo()
}

func connectMongo() *context.CancelFunc {
	url := os.Getenv("DB_URL")

	if url == "" {
		logger.Error("mongo url missing")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

	clientOpts := options.Client().ApplyURI(url)
	clientOpts.SetMinPoolSize(5)
	clientOpts.SetMaxPoolSize(10)

	var err error
	client, err = mongo.Connect(ctx, clientOpts)

	if err != nil {
		logger.Warning("an error occured while starting the database", logger.LoggerOptions{Key: "error", Data: err})
		return &cancel
	}

	db := client.Database(os.Getenv("DB_NAME"))
	setUpIndexes(ctx, db)

	logger.Info("connected to mongodb successfully")
	return &cancel
}

// Set up the indexes for the database
func setUpIndexes(ctx context.Context, db *mongo.Database) {
	UserModel = db.Collection("Users")
	UserModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}, {
		Keys:    bson.D{{Key: "workspaceId", Value: 1}},
		Options: options.Index(),
	}})

	WorkspaceModel = db.Collection("WorkSpaces")

	TaskModel = db.Collection("Tasks")
	TaskModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "workspaceId", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "assignedTo", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "scheduledDate", Value: 1}},
		Options: options.Index(),
	}})

	ReportModel = db.Collection("Reports")

	NotificationModel = db.Collection("Notifications")
	NotificationModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isRead", Value: 1}},
		Options: options.Index(),
	}})

	logger.Info("mongodb indexes set up successfully")
}

func CleanUp() {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logger.Error("an error occured while disconnecting from mongodb", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}
