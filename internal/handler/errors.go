package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/hkaraoglu/ir-scheduler/pkg/errors"
)

// WriteError maps the application error taxonomy onto HTTP statuses.
// Storage failures are logged and hidden behind a generic message.
func WriteError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unclassified error")
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
		return
	}

	switch appErr.Code {
	case apperrors.ErrValidation:
		c.JSON(http.StatusBadRequest, NewFieldErrorResponse(appErr.Field, appErr.Message))
	case apperrors.ErrNotFound:
		c.JSON(http.StatusNotFound, NewErrorResponse(appErr.Message))
	case apperrors.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, NewErrorResponse(appErr.Message))
	case apperrors.ErrForbidden:
		c.JSON(http.StatusForbidden, NewErrorResponse(appErr.Message))
	default:
		log.Error().Err(appErr).Str("path", c.Request.URL.Path).Msg("storage error")
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
	}
}
