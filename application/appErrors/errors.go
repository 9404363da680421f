package apperrors

import (
	"net/http"

	server_response "taskdesk.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "All fields are required", nil, *errMessages)
}

func EntityAlreadyExistsError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusConflict, message, nil, nil)
}

func AuthenticationError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusUnauthorized, message, nil, nil)
}

func ClientError(ctx interface{}, message string, errs []error) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, message, nil, errs)
}

func FatalServerError(ctx interface{}, err error) {
	server_response.Responder.Respond(ctx, http.StatusInternalServerError,
		"Internal server error", nil, nil)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "Abnormal payload passed", nil, nil)
}
