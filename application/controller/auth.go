package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/controller/dto"
	"taskdesk.io/application/interfaces"
	"taskdesk.io/application/repository"
	user_usecases "taskdesk.io/application/usecases/user"
	"taskdesk.io/infrastructure/auth"
	"taskdesk.io/infrastructure/cryptography"
	"taskdesk.io/infrastructure/logger"
	server_response "taskdesk.io/infrastructure/serverResponse"
	"taskdesk.io/infrastructure/validator"
)

// Login verifies credentials against the stored hash, issues a fresh
// 24-hour token and sets the session cookie. Unknown email and wrong
// password are deliberately distinguishable here (404 vs 401), unlike
// token verification which reports one uniform failure.
func Login(ctx *interfaces.ApplicationContext[dto.LoginDTO]) {
	if ctx.Body.Email == "" || ctx.Body.Password == "" {
		apperrors.ClientError(ctx.Ctx, "All fields are required", nil)
		return
	}

	// Emails are stored lowercased at registration; normalize the lookup
	// the same way so casing never locks a user out.
	userRepo := repository.UserRepo()
	user, err := userRepo.FindOneByFilter(map[string]any{
		"email": strings.ToLower(ctx.Body.Email),
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if user == nil {
		apperrors.NotFoundError(ctx.Ctx, "User not found!!")
		return
	}

	if !cryptography.CryptoHasher.VerifyHashData(user.Password, ctx.Body.Password) {
		apperrors.AuthenticationError(ctx.Ctx, "Invalid Email or Password!!")
		return
	}

	var workspaceName *string
	if user.WorkspaceID != nil {
		workspace, err := repository.WorkspaceRepo().FindByID(*user.WorkspaceID)
		if err != nil {
			apperrors.FatalServerError(ctx.Ctx, err)
			return
		}
		if workspace != nil {
			workspaceName = &workspace.Name
		}
	}

	claims := auth.IdentityClaims{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		Workspace: workspaceName,
	}
	token, err := auth.GenerateAuthToken(claims)
	if err != nil {
		logger.Error("an error occured while generating auth token on login", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	if ginCtx, ok := ctx.Ctx.(*gin.Context); ok {
		auth.SetSessionCookie(ginCtx, *token)
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "Login successful", map[string]any{
		"JWT_Token": *token,
		"user": map[string]any{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
			"username":  user.Username,
			"role":      user.Role,
			"workspace": workspaceName,
		},
	}, nil)
}

func Register(ctx *interfaces.ApplicationContext[dto.RegisterDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	user, err := user_usecases.CreateUserWithWorkspaceLink(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}

	token, err := auth.GenerateAuthToken(auth.IdentityClaims{
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Username:    user.Username,
		Role:        user.Role,
		WorkspaceID: user.WorkspaceID,
	})
	if err != nil {
		logger.Error("an error occured while generating auth token on registration", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "Registration successful", map[string]any{
		"username":  user.Username,
		"JWT_Token": *token,
	}, nil)
}

func Logout(ctx *interfaces.ApplicationContext[any]) {
	if ginCtx, ok := ctx.Ctx.(*gin.Context); ok {
		auth.ClearSessionCookie(ginCtx)
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "Logged out successfully", nil, nil)
}
