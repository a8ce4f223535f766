package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"storefront/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error recorded by httperr and turns
// handlers that wrote nothing into a JSON 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if last := c.Errors.Last(); last != nil {
			slog.Error("unhandled handler error",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", last.Err)
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: httperr.InternalMessage})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				attrs := []any{
					"panic", rec,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				}
				if sessionID, ok := GetSessionID(c); ok {
					attrs = append(attrs, "session_id", sessionID)
				}
				slog.Error("recovered from panic", attrs...)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{Error: httperr.InternalMessage})
			}
		}()
		c.Next()
	}
}
