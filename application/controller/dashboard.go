package controller

import (
	"net/http"
	"time"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/interfaces"
	"taskdesk.io/application/repository"
	"taskdesk.io/entities"
	server_response "taskdesk.io/infrastructure/serverResponse"
)

// GetDashboardSummary aggregates today's task counts for the caller's
// workspace plus a month-by-month report activity series for the
// current year.
func GetDashboardSummary(ctx *interfaces.ApplicationContext[any]) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	baseQuery := map[string]any{
		"scheduledDate": map[string]any{"$gte": dayStart, "$lte": dayEnd},
	}
	if ctx.Identity != nil {
		if ctx.Identity.WorkspaceID != nil {
			baseQuery["workspaceId"] = *ctx.Identity.WorkspaceID
		}
		if ctx.Identity.Role == string(entities.MemberRole) && ctx.Identity.ID != "" {
			baseQuery["assignedTo"] = ctx.Identity.ID
		}
	}

	taskRepo := repository.TaskRepo()
	countByStatus := func(status *entities.TaskStatus) (int64, error) {
		query := map[string]any{}
		for key, value := range baseQuery {
			query[key] = value
		}
		if status != nil {
			query["currentStatus"] = *status
		}
		return taskRepo.CountDocs(query)
	}

	total, err := countByStatus(nil)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	completedStatus := entities.TaskCompleted
	completed, err := countByStatus(&completedStatus)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	pendingStatus := entities.TaskPending
	pending, err := countByStatus(&pendingStatus)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	holdStatus := entities.TaskOnHold
	hold, err := countByStatus(&holdStatus)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	monthlyReports, err := monthlyReportSeries(now.Year())
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, map[string]any{
		"taskStats": map[string]any{
			"total":     total,
			"completed": completed,
			"pending":   pending,
			"hold":      hold,
		},
		"pieChartData": []map[string]any{
			{"name": "Completed", "value": completed},
			{"name": "Pending", "value": pending},
			{"name": "On Hold", "value": hold},
		},
		"monthlyReports": monthlyReports,
	})
}

// monthlyReportSeries buckets the year's reports per month into active
// and inactive counts. Twelve count queries per flavour is acceptable
// at this collection size; revisit with an aggregation pipeline if the
// report volume grows.
func monthlyReportSeries(year int) ([]map[string]any, error) {
	reportRepo := repository.ReportRepo()
	series := make([]map[string]any, 0, 12)

	for month := time.January; month <= time.December; month++ {
		monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
		window := map[string]any{"$gte": monthStart, "$lte": monthEnd}

		active, err := reportRepo.CountDocs(map[string]any{
			"createdAt": window,
			"status":    true,
		})
		if err != nil {
			return nil, err
		}
		inactive, err := reportRepo.CountDocs(map[string]any{
			"createdAt": window,
			"status":    false,
		})
		if err != nil {
			return nil, err
		}

		series = append(series, map[string]any{
			"month":    monthStart.Format("Jan"),
			"Active":   active,
			"Inactive": inactive,
		})
	}
	return series, nil
}
