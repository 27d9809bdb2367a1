package shared

import (
	"errors"

	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/service"

	"github.com/gin-gonic/gin"
)

// RespondServiceError translates a service error into an HTTP response.
// Unrecognized errors are logged and become a generic 500.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountLocked),
		errors.Is(err, service.ErrAccountBlocked),
		errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrInvalidResetToken),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrSlugExists),
		errors.Is(err, service.ErrInvalidDiscount),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrProductUnavailable),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrOrderNotCancellable),
		errors.Is(err, service.ErrOrderNotRefundable),
		errors.Is(err, service.ErrInvalidAmount):
		response.BadRequest(c, err.Error())
	default:
		logger.Errorw("request failed",
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", err)
		response.ServerError(c)
	}
}
