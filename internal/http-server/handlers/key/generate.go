package key

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/api/apierr"
	"SkyCherry/internal/lib/api/cont"
	"SkyCherry/internal/lib/api/response"
	"SkyCherry/internal/lib/sl"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Generate issues an api key. Only the master key may call it.
func Generate(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.key")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if !cont.GetUser(r.Context()).IsMaster() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("Forbidden"))
			return
		}

		var req entity.KeyRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("failed to bind request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		apiKey, err := handler.GenerateApiKey(r.Context(), req.Username)
		if err != nil {
			logger.Error("generate api key", sl.Err(err))
			render.Status(r, apierr.StatusOf(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Generate failed: %v", err)))
			return
		}

		logger.With(
			slog.String("username", req.Username),
			sl.Secret("key", apiKey),
		).Info("api key generated")
		render.JSON(w, r, response.Ok(apiKey))
	}
}
