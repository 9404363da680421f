package user_usecases

import (
	"context"
	"errors"
	"strings"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/controller/dto"
	"taskdesk.io/application/repository"
	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/cryptography"
	"taskdesk.io/infrastructure/logger"
)

// CreateUserWithWorkspaceLink registers a user and wires the user/workspace
// references in both directions. The workspace write and the backfill are
// two sequential writes, not a transaction: a crash in between leaves a
// workspace without an admin reference. Errors are reported to the client
// here; callers only check the returned error to stop.
func CreateUserWithWorkspaceLink(ctx any, payload *dto.RegisterDTO) (*entities.User, error) {
	payload.Email = strings.ToLower(payload.Email)
	userRepo := repository.UserRepo()
	workspaceRepo := repository.WorkspaceRepo()

	exists, err := userRepo.CountDocs(map[string]any{
		"email": payload.Email,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if exists != 0 {
		apperrors.EntityAlreadyExistsError(ctx, "User already registered!!")
		return nil, errors.New("user already registered")
	}

	hashedPassword, err := cryptography.CryptoHasher.HashString(payload.Password, nil)
	if err != nil {
		logger.Error("an error occured while hashing user password", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	var workspaceToAssign *string

	if payload.Role == entities.AdminRole {
		if payload.WorkspaceData == nil || payload.WorkspaceData.Name == "" || payload.WorkspaceData.Description == "" {
			apperrors.ClientError(ctx, "Workspace name & description required for Admin", nil)
			return nil, errors.New("missing workspace data")
		}
		workspace, err := workspaceRepo.CreateOne(context.TODO(), entities.Workspace{
			Name:        payload.WorkspaceData.Name,
			Description: payload.WorkspaceData.Description,
			AdminID:     nil, // backfilled once the admin user exists
			MemberIDs:   []string{},
		})
		if err != nil {
			apperrors.FatalServerError(ctx, err)
			return nil, err
		}
		workspaceToAssign = &workspace.ID
	}

	if payload.Role == entities.MemberRole {
		if payload.WorkspaceID == nil || *payload.WorkspaceID == "" {
			apperrors.ClientError(ctx, "workspaceId is required for Member", nil)
			return nil, errors.New("missing workspace id")
		}
		workspaceToAssign = payload.WorkspaceID
	}

	user, err := userRepo.CreateOne(context.TODO(), entities.User{
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Username:    payload.Username,
		Email:       payload.Email,
		Password:    string(hashedPassword),
		Role:        payload.Role,
		WorkspaceID: workspaceToAssign,
	})
	if err != nil {
		logger.Error("could not create user", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	if payload.Role == entities.AdminRole && workspaceToAssign != nil {
		_, err = workspaceRepo.UpdatePartialByID(*workspaceToAssign, map[string]any{
			"adminId": user.ID,
		})
		if err != nil {
			logger.Error("created admin user but failed to backfill workspace admin reference", logger.LoggerOptions{
				Key:  "userId",
				Data: user.ID,
			}, logger.LoggerOptions{
				Key:  "workspaceId",
				Data: *workspaceToAssign,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			apperrors.FatalServerError(ctx, err)
			return nil, err
		}
	}

	if payload.Role == entities.MemberRole && workspaceToAssign != nil {
		_, err = workspaceRepo.UpdateWithOperatorByID(*workspaceToAssign, map[string]any{
			"$push": map[string]any{"memberIds": user.ID},
		})
		if err != nil {
			logger.Error("created member user but failed to append to workspace member list", logger.LoggerOptions{
				Key:  "userId",
				Data: user.ID,
			}, logger.LoggerOptions{
				Key:  "workspaceId",
				Data: *workspaceToAssign,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			apperrors.FatalServerError(ctx, err)
			return nil, err
		}
	}

	return user, nil
}
