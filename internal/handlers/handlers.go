package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/achievement-tracker/api/v1"
	"github.com/tupyy/achievement-tracker/internal/services"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

type Handler struct {
	librarySrv     *services.LibraryService
	collectionSrv  *services.CollectionService
	credentialsSrv *services.CredentialsService
}

func New(librarySrv *services.LibraryService, collectionSrv *services.CollectionService, credentialsSrv *services.CredentialsService) *Handler {
	return &Handler{
		librarySrv:     librarySrv,
		collectionSrv:  collectionSrv,
		credentialsSrv: credentialsSrv,
	}
}

// ErrorHandler answers parameter binding failures in the API error format.
func ErrorHandler(c *gin.Context, err error, statusCode int) {
	c.JSON(statusCode, v1.Error{Error: err.Error()})
}

// writeError maps a service error to its status code and logs the unexpected ones.
func writeError(c *gin.Context, logger string, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		status = http.StatusNotFound
	case srvErrors.IsOutOfRangeError(err), srvErrors.IsInvalidArgumentError(err):
		status = http.StatusBadRequest
	case srvErrors.IsCredentialsMissingError(err):
		status = http.StatusPreconditionFailed
	case srvErrors.IsUnauthorizedError(err):
		status = http.StatusUnauthorized
	case srvErrors.IsNetworkFailureError(err), srvErrors.IsMalformedResponseError(err):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		zap.S().Named(logger).Errorw(msg, "error", err)
		c.JSON(status, v1.Error{Error: msg + ": " + err.Error()})
		return
	}
	c.JSON(status, v1.Error{Error: err.Error()})
}
