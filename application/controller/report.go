package controller

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/controller/dto"
	"taskdesk.io/application/interfaces"
	"taskdesk.io/application/repository"
	"taskdesk.io/entities"
	server_response "taskdesk.io/infrastructure/serverResponse"
	"taskdesk.io/infrastructure/validator"
)

func AddReport(ctx *interfaces.ApplicationContext[dto.CreateReportDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	report, err := repository.ReportRepo().CreateOne(nil, entities.Report{
		Title:   ctx.Body.Title,
		Content: ctx.Body.Content,
		Author:  ctx.Body.Author,
		Type:    ctx.Body.Type,
		Status:  *ctx.Body.Status,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, report)
}

func GetReports(ctx *interfaces.ApplicationContext[any]) {
	reports, err := repository.ReportRepo().FindMany(map[string]any{}, options.Find().SetSort(map[string]any{"createdAt": -1}))
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, reports)
}

func GetReportByID(ctx *interfaces.ApplicationContext[any], id string) {
	report, err := repository.ReportRepo().FindByID(id)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if report == nil {
		apperrors.NotFoundError(ctx.Ctx, "Report not found")
		return
	}
	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, report)
}

func UpdateReport(ctx *interfaces.ApplicationContext[dto.UpdateReportDTO], id string) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	reportRepo := repository.ReportRepo()
	updated, err := reportRepo.UpdatePartialByID(id, map[string]any{
		"title":   ctx.Body.Title,
		"content": ctx.Body.Content,
		"author":  ctx.Body.Author,
		"type":    ctx.Body.Type,
		"status":  *ctx.Body.Status,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if !updated {
		apperrors.NotFoundError(ctx.Ctx, "Report not found")
		return
	}

	report, err := reportRepo.FindByID(id)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, report)
}

func DeleteReport(ctx *interfaces.ApplicationContext[any], id string) {
	deleted, err := repository.ReportRepo().DeleteByID(id)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if deleted == 0 {
		apperrors.NotFoundError(ctx.Ctx, "Report not found")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "Report deleted", nil, nil)
}
