package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"civictrack/common"

	"github.com/gin-gonic/gin"
)

// RequestInit assigns a request id and start time to every request.
func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requestId", uuid.New().String())
		c.Set("start-time", time.Now())
		c.Next()
	}
}

// RequestLogger writes one access-log line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		startTime := getStartTime(c)
		logger.Info("request",
			zap.String("requestId", c.GetString("requestId")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("latencyMs", time.Since(startTime).Milliseconds()),
		)
	}
}

func getStartTime(c *gin.Context) time.Time {
	if value, exists := c.Get("start-time"); exists || value != nil {
		if t, ok := value.(time.Time); ok {
			return t
		}
	}
	return time.Now()
}

// Error translates an application error into its HTTP status and body.
// Validation failures carry the offending field path; every other kind maps
// to {message} with the kind's status code. Errors without a kind are 500s.
func Error(c *gin.Context, err error) {
	appErr, ok := common.AsAppError(err)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, MessageBody{Message: "Internal server error"})
		return
	}

	code := appErr.Code
	if appErr.Kind == common.KindConflict {
		// The client contract has no 409; collisions surface as plain failures.
		code = http.StatusInternalServerError
	}

	if appErr.Kind == common.KindValidation {
		c.AbortWithStatusJSON(code, ValidationBody{Message: appErr.Message, Field: appErr.Field})
		return
	}
	c.AbortWithStatusJSON(code, MessageBody{Message: appErr.Message})
}
