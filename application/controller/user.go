package controller

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/interfaces"
	"taskdesk.io/application/repository"
	server_response "taskdesk.io/infrastructure/serverResponse"
)

// GetUsers lists the members of the caller's workspace. Password hashes
// never leave the database layer.
func GetUsers(ctx *interfaces.ApplicationContext[any]) {
	query := map[string]any{}
	if ctx.Identity != nil && ctx.Identity.WorkspaceID != nil {
		query["workspaceId"] = *ctx.Identity.WorkspaceID
	}

	users, err := repository.UserRepo().FindMany(query,
		options.Find().
			SetProjection(bson.M{"password": 0}).
			SetSort(map[string]any{"createdAt": -1}))
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, users)
}

func GetUserByID(ctx *interfaces.ApplicationContext[any], id string) {
	user, err := repository.UserRepo().FindByID(id, options.FindOne().SetProjection(bson.M{"password": 0}))
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if user == nil {
		apperrors.NotFoundError(ctx.Ctx, "User not found!!")
		return
	}
	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, user)
}
