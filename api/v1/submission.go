package v1

import (
	"net/http"
	"strconv"

	"github.com/karigane/bookscan/http/response"
	"github.com/karigane/bookscan/log"
	"github.com/karigane/bookscan/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errInvalidLimit = errors.New("limit must be a positive integer")

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	find := &model.FindSubmission{}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			response.BadRequest(w, r, errInvalidLimit)
			return
		}
		find.Limit = &limit
	}
	if v := r.URL.Query().Get("isbn"); v != "" {
		find.ISBN = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		find.Status = &v
	}

	submissions, err := h.store.ListSubmissions(find)
	if err != nil {
		log.Error("Error listing submissions", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, submissions)
}
