package apperror

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler returns Echo's central error handler. Every error leaving
// a handler is normalized to {"error":{"code":...,"message":...}} so API
// clients see one shape regardless of where the error originated.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, errorObj := Classify(err)

		// 5xx errors get logged at error level
		if status >= 500 {
			log.Error("request error",
				slog.Int("status", status),
				slog.String("error", err.Error()),
			)
		}

		response := map[string]any{
			"error": errorObj,
		}

		if c.Request().Method == http.MethodHead {
			c.NoContent(status)
		} else {
			c.JSON(status, response)
		}
	}
}
