// Package respond implements the API's response envelope: reads answer with
// {"data": ...}, writes with {"message": ...}, and every failure with
// {"error": ...}.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Data writes a read result wrapped in the data envelope.
func Data(c echo.Context, status int, v interface{}) error {
	return c.JSON(status, map[string]interface{}{"data": v})
}

// Message writes a mutation acknowledgement wrapped in the message envelope.
func Message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]interface{}{"message": msg})
}

// ValidationFailure is the error payload for schema mismatches. It carries
// the expected shape so callers can correct their request.
type ValidationFailure struct {
	Message string      `json:"message"`
	Schema  interface{} `json:"schema"`
}

// HTTPErrorHandler returns an echo error handler that serializes every error
// into the error envelope. Handlers map their own failures to *echo.HTTPError;
// anything else reaching this point is unexpected and is logged with full
// context but reported with minimal detail.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var payload interface{} = "internal server error"

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			payload = he.Message
		} else {
			rid, _ := c.Get("request_id").(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, map[string]interface{}{"error": payload})
	}
}
