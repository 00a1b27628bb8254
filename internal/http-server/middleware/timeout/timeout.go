package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Timeout bounds the request context to the given number of seconds.
// Handlers report the expired deadline themselves (apierr.StatusOf maps it
// to 504); a handler that wrote nothing by then gets a bare 504 here.
func Timeout(seconds int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), time.Duration(seconds)*time.Second)
			defer func() {
				cancel()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					w.WriteHeader(http.StatusGatewayTimeout)
				}
			}()

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
