package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"restaurant_analytics/pkg/errcodes"
	"restaurant_analytics/pkg/httpx/reply"
	"restaurant_analytics/pkg/logx"
)

// Recovery turns a handler panic into a 500 response with the standard error
// body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint,goerr113
					panic(rec)
				}

				logger(ctx).Error(
					"panic in handler",
					slog.String(logx.FieldError, fmt.Sprint(rec)),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.JSON(ctx, w, http.StatusInternalServerError, reply.ErrorBody(ctx, errcodes.InternalServerError, ""))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
