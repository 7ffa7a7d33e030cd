package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/pkg/response"
)

// internalErrMsg is the fixed client-facing message for unexpected failures;
// the underlying cause is only logged server-side.
const internalErrMsg = "Undefined server error! Please try again later."

// respondError maps business errors to their HTTP statuses and funnels
// everything else into a generic 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusBadRequest, "Invalid credentials", nil)
	case errors.Is(err, application.ErrDuplicateUser):
		response.Error[any](c, http.StatusBadRequest, "User already exists.", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusUnauthorized, "User not authorized", nil)
	case errors.Is(err, application.ErrAlreadyLiked):
		response.Error[any](c, http.StatusBadRequest, "Post already liked", nil)
	case errors.Is(err, application.ErrNotLiked):
		response.Error[any](c, http.StatusBadRequest, "Post has not yet been liked", nil)
	default:
		logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		response.Error[any](c, http.StatusInternalServerError, internalErrMsg, nil)
	}
}
