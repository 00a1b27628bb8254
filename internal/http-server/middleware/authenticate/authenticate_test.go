package authenticate

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/api/cont"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAuth map[string]string

func (f fakeAuth) AuthenticateByToken(_ context.Context, token string) (*entity.UserAuth, error) {
	if username, ok := f[token]; ok {
		return &entity.UserAuth{Username: username, Token: token}, nil
	}
	return nil, errors.New("api key not found")
}

func TestAuthenticate(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	var seen *entity.UserAuth
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = cont.GetUser(r.Context())
	})
	handler := New(log, fakeAuth{"k-1": "web"})(next)

	tests := []struct {
		name   string
		header string
		status int
		user   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"empty token", "Bearer ", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, ""},
		{"valid token", "Bearer k-1", http.StatusOK, "web"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.user == "" {
				assert.Nil(t, seen)
				return
			}
			if assert.NotNil(t, seen) {
				assert.Equal(t, tt.user, seen.Username)
			}
			assert.Equal(t, tt.user, rec.Header().Get("X-User"))
		})
	}
}

func TestAuthenticate_Disabled(t *testing.T) {
	handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer k-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		err    error
	}{
		{"", "", errNoHeader},
		{"Basic abc", "", errNoToken},
		{"Bearer   ", "", errNoToken},
		{"Bearer k-1", "k-1", nil},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}

		token, err := bearerToken(req)
		assert.ErrorIs(t, err, tt.err, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

func TestClientAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	assert.Equal(t, "10.0.0.1:5000", clientAddr(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", clientAddr(req))
}
