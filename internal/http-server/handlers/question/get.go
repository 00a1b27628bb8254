package question

import (
	"SkyCherry/internal/lib/api/response"
	"SkyCherry/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func GetQuestion(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.question")

		id := chi.URLParam(r, "id")
		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("id", id),
		)

		if handler == nil {
			logger.Error("question service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("question service not available"))
			return
		}

		question, err := handler.GetQuestion(r.Context(), id)
		if err != nil {
			logger.Error("failed to get question", sl.Err(err))
			renderFailure(w, r, "Failed to get question", err)
			return
		}

		logger.Debug("question found", slog.Int("answers", len(question.Answers)))
		render.JSON(w, r, response.Ok(question))
	}
}
