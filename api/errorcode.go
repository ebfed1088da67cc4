package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/linkme/linkme-api/help"
	"github.com/linkme/linkme-api/utils"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "email is already registered",
		1101: "jmbg is already registered",
		1102: "invalid email or password",
		1103: "user not found",

		1200: "the requested item does not exist",
		1201: "the help request cannot change to this status",
		1202: "you are not allowed to do this",
		1203: "the help request was accepted but the conversation could not be opened, please try again",
		1204: "storage is temporarily unavailable, please try again",

		1300: "you have already rated this help request",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken         = errorJSON(1100)
	errorJmbgTaken          = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)
	errorUserNotFound       = errorJSON(1103)

	errorNotFound             = errorJSON(1200)
	errorInvalidTransition    = errorJSON(1201)
	errorNotPermitted         = errorJSON(1202)
	errorAcceptanceIncomplete = errorJSON(1203)
	errorStorageUnavailable   = errorJSON(1204)

	errorDuplicateRating = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// localize translates the message of an error object to the language the
// client accepts
func localize(c *gin.Context, obj ErrorResponse) ErrorResponse {
	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	obj.Message = utils.Localize(localizer, &i18n.Message{
		ID:    fmt.Sprintf("error_%d", obj.Code),
		Other: obj.Message,
	})
	return obj
}

// serviceErrorResponse maps a help service error to its status and error
// object
func serviceErrorResponse(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, help.ErrValidation):
		return http.StatusBadRequest, errorInvalidParameters
	case errors.Is(err, help.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorInvalidCredentials
	case errors.Is(err, help.ErrNotPermitted):
		return http.StatusForbidden, errorNotPermitted
	case errors.Is(err, help.ErrNotFound):
		return http.StatusNotFound, errorNotFound
	case errors.Is(err, help.ErrInvalidTransition):
		return http.StatusConflict, errorInvalidTransition
	case errors.Is(err, help.ErrDuplicateRating):
		return http.StatusConflict, errorDuplicateRating
	case errors.Is(err, help.ErrDuplicateEmail):
		return http.StatusConflict, errorEmailTaken
	case errors.Is(err, help.ErrDuplicateIdentity):
		return http.StatusConflict, errorJmbgTaken
	case errors.Is(err, help.ErrAcceptanceIncomplete):
		return http.StatusInternalServerError, errorAcceptanceIncomplete
	case errors.Is(err, help.ErrPersistence):
		return http.StatusInternalServerError, errorStorageUnavailable
	default:
		return http.StatusInternalServerError, errorInternalServer
	}
}

// abortWithServiceError responds with the error object of a service error.
// Server side failures are reported to sentry.
func abortWithServiceError(c *gin.Context, err error) {
	code, obj := serviceErrorResponse(err)

	if code >= http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
	}

	abortWithEncoding(c, code, obj, err)
}
