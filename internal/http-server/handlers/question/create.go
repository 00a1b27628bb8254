package question

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/api/response"
	"SkyCherry/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func CreateQuestion(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.question")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("question service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("question service not available"))
			return
		}

		var req entity.QuestionRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("failed to bind request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		question, err := handler.CreateQuestion(r.Context(), &req)
		if err != nil {
			logger.Error("failed to create question", sl.Err(err))
			renderFailure(w, r, "Failed to create question", err)
			return
		}

		logger.With(slog.String("id", question.ID.Hex())).Info("question created")
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(question))
	}
}
