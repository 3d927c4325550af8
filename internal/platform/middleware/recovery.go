package middleware

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dabform/dabform/internal/platform/auth"
)

// stackLimit caps the goroutine stack written to the log.
const stackLimit = 8 << 10

// Recovery converts a handler panic, for example one raised by the PDF
// backend, into a 500. The log entry names the request and the signed-in
// user. http.ErrAbortHandler is re-raised so net/http can drop the
// connection.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				stack := make([]byte, stackLimit)
				stack = stack[:runtime.Stack(stack, false)]

				req := c.Request()
				evt := logger.Error().
					Str("request_id", GetRequestID(c)).
					Str("method", req.Method).
					Str("path", req.URL.Path).
					Bytes("stack", stack)
				if uid := auth.UserIDFromContext(req.Context()); uid != "" {
					evt = evt.Str("user_id", uid)
				}
				if perr, ok := r.(error); ok {
					evt = evt.Err(perr)
				} else {
					evt = evt.Interface("panic", r)
				}
				evt.Msg("panic recovered")

				err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}()
			return next(c)
		}
	}
}
