package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/interfaces"
	"taskdesk.io/application/repository"
	"taskdesk.io/infrastructure/database/repository/cache"
	"taskdesk.io/infrastructure/logger"
	server_response "taskdesk.io/infrastructure/serverResponse"
)

const (
	workspaceDirectoryCacheKey = "workspaces:directory"
	workspaceDirectoryCacheTTL = 5 * time.Minute
)

type workspaceDirectoryEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetWorkspaceDirectory serves the public workspace picker used on the
// registration page. Only id and name are ever exposed; the listing is
// cached because it is read on every registration page load.
func GetWorkspaceDirectory(ctx *interfaces.ApplicationContext[any]) {
	if cached := cache.Cache.FindOne(workspaceDirectoryCacheKey); cached != nil {
		var directory []workspaceDirectoryEntry
		if err := json.Unmarshal([]byte(*cached), &directory); err == nil {
			server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, directory)
			return
		}
		logger.Warning("discarding unparseable workspace directory cache entry")
		cache.Cache.DeleteOne(workspaceDirectoryCacheKey)
	}

	workspaces, err := repository.WorkspaceRepo().FindMany(map[string]any{},
		options.Find().
			SetProjection(bson.M{"_id": 1, "name": 1}).
			SetSort(map[string]any{"name": 1}))
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	directory := make([]workspaceDirectoryEntry, 0, len(*workspaces))
	for _, workspace := range *workspaces {
		directory = append(directory, workspaceDirectoryEntry{
			ID:   workspace.ID,
			Name: workspace.Name,
		})
	}

	if serialized, err := json.Marshal(directory); err == nil {
		cache.Cache.CreateEntry(workspaceDirectoryCacheKey, serialized, workspaceDirectoryCacheTTL)
	}

	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, directory)
}
