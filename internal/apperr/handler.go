package apperr

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"voiceforge/pkg/logger"
)

// ErrorHandler returns the centralized echo error handler. Known error
// kinds map to their status; echo's own HTTPErrors (404 route misses,
// malformed bodies) pass through; everything else is a 500.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := logger.FromEcho(c)

		if appErr := From(err); appErr != nil {
			if appErr.Kind == KindInternal {
				log.Error("internal error", zap.Error(err))
			} else {
				log.Debug("request failed", zap.String("kind", appErr.Kind.Name()), zap.Error(err))
			}

			body := echo.Map{
				"error":   appErr.Kind.Name(),
				"message": publicMessage(appErr),
			}
			if len(appErr.Details) > 0 {
				body["details"] = appErr.Details
			}
			_ = c.JSON(appErr.Kind.Status(), body)
			return
		}

		if httpErr, ok := err.(*echo.HTTPError); ok {
			_ = c.JSON(httpErr.Code, echo.Map{"error": http.StatusText(httpErr.Code), "message": httpErr.Message})
			return
		}

		log.Error("unhandled error", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   KindInternal.Name(),
			"message": "An unexpected error occurred",
		})
	}
}

func publicMessage(e *Error) string {
	if e.Kind == KindInternal {
		// Internal detail stays in the logs.
		return "An unexpected error occurred"
	}
	return e.Message
}
