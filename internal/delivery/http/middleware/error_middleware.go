package middleware

import (
	"errors"
	"net/http"

	"skill-summarizer-backend/internal/delivery/http/response"
	"skill-summarizer-backend/pkg/apperror"
	"skill-summarizer-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed",
					"request_id", c.GetString("RequestID"),
					"path", c.Request.URL.Path,
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, detailsOrNil(appErr.Details))
			return
		}

		// Never expose store or driver errors to clients
		logger.Log.Error("Internal Server Error",
			"request_id", c.GetString("RequestID"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}

func detailsOrNil(details []string) interface{} {
	if len(details) == 0 {
		return nil
	}
	return details
}
