package question

import (
	"SkyCherry/internal/lib/api/apierr"
	"SkyCherry/internal/lib/api/response"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// renderFailure writes the status and message of an apierr.Error as is;
// other errors get the status from apierr.StatusOf and the action as prefix.
func renderFailure(w http.ResponseWriter, r *http.Request, action string, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		render.Status(r, apiErr.Status)
		render.JSON(w, r, response.Error(apiErr.Message))
		return
	}
	render.Status(r, apierr.StatusOf(err))
	render.JSON(w, r, response.Error(fmt.Sprintf("%s: %v", action, err)))
}
