package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-matcher-backend/internal/delivery/http/response"
	"employee-matcher-backend/pkg/apperror"
	"employee-matcher-backend/pkg/logger"
)

// ErrorHandler renders errors handlers attached via c.Error. AppErrors keep
// their status code and message; anything else becomes a generic 500 so
// internal details never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("Request failed", "status", appErr.Code, "error", err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("Unhandled error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
