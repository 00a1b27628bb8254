package question

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/api/response"
	"SkyCherry/internal/lib/sl"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListQuestions(log *slog.Logger, handler Core) http.HandlerFunc {
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

		opts, err := parseListOptions(r.URL.Query())
		if err != nil {
			logger.Debug("invalid list options", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		questions, err := handler.ListQuestions(r.Context(), opts)
		if err != nil {
			logger.Error("failed to list questions", sl.Err(err))
			renderFailure(w, r, "Failed to list questions", err)
			return
		}

		logger.Debug("questions listed",
			slog.Int64("skip", opts.Skip),
			slog.Int64("limit", opts.Limit),
			slog.Int("count", len(questions)),
		)
		render.JSON(w, r, response.Ok(questions))
	}
}

func parseListOptions(query url.Values) (entity.ListOptions, error) {
	var opts entity.ListOptions

	if v := query.Get("skip"); v != "" {
		skip, err := strconv.ParseInt(v, 10, 64)
		if err != nil || skip < 0 {
			return opts, fmt.Errorf("skip must be a non-negative integer")
		}
		opts.Skip = skip
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit <= 0 {
			return opts, fmt.Errorf("limit must be a positive integer")
		}
		opts.Limit = limit
	}

	opts.Filter = entity.QuestionFilter{
		MainField:        query.Get("mainField"),
		SubField:         query.Get("subField"),
		Occupation:       query.Get("occupation"),
		FamilyType:       query.Get("familyType"),
		Interest:         query.Get("interest"),
		MonthlyIncome:    query.Get("montlyIncome"),
		Assets:           query.Get("assets"),
		IncomeManagement: query.Get("incomeManagement"),
		CreatedBy:        query.Get("createdBy"),
	}
	for _, tag := range query["tag"] {
		for _, t := range strings.Split(tag, ",") {
			if t = strings.TrimSpace(t); t != "" {
				opts.Filter.Tags = append(opts.Filter.Tags, t)
			}
		}
	}

	return opts, nil
}
