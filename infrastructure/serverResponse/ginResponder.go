package server_response

import (
	"os"

	"taskdesk.io/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

type ginResponder struct{}

var Responder ginResponder

// Respond writes a flat JSON body of the form {"message": ..., <payload fields>}.
// Payload keys are merged at the top level so the wire shape matches what
// browser clients expect ({JWT_Token, user, message} and friends).
func (gr ginResponder) Respond(ctx interface{}, code int, message string, payload map[string]any, errs []error) {
	ginCtx, ok := (ctx).(*gin.Context)
	if !ok {
		logger.Error("could not transform ctx to gin.Context in serverResponse package", logger.LoggerOptions{
			Key:  "payload",
			Data: ctx,
		})
		return
	}
	ginCtx.Abort()
	response := map[string]any{
		"message": message,
	}
	for key, value := range payload {
		response[key] = value
	}
	if errs != nil {
		errMsgs := []string{}
		for _, err := range errs {
			errMsgs = append(errMsgs, err.Error())
		}
		response["errors"] = errMsgs
	}
	if os.Getenv("ENV") != "prod" {
		logger.Info("response", logger.LoggerOptions{
			Key:  "message",
			Data: message,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: errs,
		})
	}
	ginCtx.JSON(code, response)
}

// RespondRaw sends payload as the entire response body. Used by endpoints
// whose clients expect a bare document or array rather than an envelope.
func (gr ginResponder) RespondRaw(ctx interface{}, code int, payload any) {
	ginCtx, ok := (ctx).(*gin.Context)
	if !ok {
		logger.Error("could not transform ctx to gin.Context in serverResponse package", logger.LoggerOptions{
			Key:  "payload",
			Data: ctx,
		})
		return
	}
	ginCtx.Abort()
	ginCtx.JSON(code, payload)
}
