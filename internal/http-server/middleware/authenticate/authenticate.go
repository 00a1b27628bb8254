package authenticate

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/api/cont"
	"SkyCherry/internal/lib/api/response"
	"SkyCherry/internal/lib/sl"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

var (
	errNoHeader = errors.New("authorization header not found")
	errNoToken  = errors.New("bearer token not found")
	errDisabled = errors.New("authentication not enabled")
)

type Authenticate interface {
	AuthenticateByToken(ctx context.Context, token string) (*entity.UserAuth, error)
}

type authenticator struct {
	auth Authenticate
	log  *slog.Logger
}

// New rejects requests without a known bearer key and writes one access log
// line per request, accepted or not.
func New(log *slog.Logger, auth Authenticate) func(next http.Handler) http.Handler {
	a := &authenticator{
		auth: auth,
		log:  log.With(sl.Module("middleware.authenticate")),
	}
	a.log.Info("authenticate middleware initialized")
	return a.wrap
}

func (a *authenticator) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		user, err := a.identify(r)

		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", clientAddr(r)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		}
		defer func() {
			a.log.With(attrs...).With(
				slog.Int("status", ww.Status()),
				slog.Int("size", ww.BytesWritten()),
				slog.Float64("duration", time.Since(started).Seconds()),
			).Info("incoming request")
		}()

		if err != nil {
			attrs = append(attrs, sl.Err(err))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(ww, r, response.Error(unauthorizedMessage(err)))
			return
		}

		attrs = append(attrs, slog.String("user", user.Username))
		ww.Header().Set("X-Request-ID", middleware.GetReqID(r.Context()))
		ww.Header().Set("X-User", user.Username)
		next.ServeHTTP(ww, r.WithContext(cont.PutUser(r.Context(), user)))
	})
}

func (a *authenticator) identify(r *http.Request) (*entity.UserAuth, error) {
	token, err := bearerToken(r)
	if err != nil {
		return nil, err
	}
	if a.auth == nil {
		return nil, errDisabled
	}
	return a.auth.AuthenticateByToken(r.Context(), token)
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errNoHeader
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", errNoToken
	}
	return token, nil
}

// clientAddr prefers X-Forwarded-For when running behind a proxy.
func clientAddr(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, errNoHeader):
		return "Authorization header not found"
	case errors.Is(err, errNoToken):
		return "Token not found"
	case errors.Is(err, errDisabled):
		return "Unauthorized: authentication not enabled"
	}
	return "Unauthorized: token not found"
}
