package v1

import (
	"encoding/json"
	"net/http"

	"github.com/karigane/bookscan/catalog"
	"github.com/karigane/bookscan/http/request"
	"github.com/karigane/bookscan/http/response"
	"github.com/karigane/bookscan/log"
	"github.com/karigane/bookscan/model"
	"github.com/karigane/bookscan/notion"
	"github.com/karigane/bookscan/pipeline"
	"github.com/karigane/bookscan/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// bookResponse is the envelope every submission entry point returns: a
// success flag plus either the payload or a short error string.
type bookResponse struct {
	Success  bool        `json:"success"`
	Book     *model.Book `json:"book,omitempty"`
	NotionID string      `json:"notion_id,omitempty"`
	Error    string      `json:"error,omitempty"`
}

type batchResponse struct {
	Success   bool     `json:"success"`
	Processed int      `json:"processed"`
	Total     int      `json:"total"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
	Error     string   `json:"error,omitempty"`
}

func (h *Handler) addBookSingle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ISBN string `json:"isbn"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.JSON(w, r, http.StatusBadRequest, bookResponse{Error: "Invalid request body"})
		return
	}
	if body.ISBN == "" {
		response.JSON(w, r, http.StatusBadRequest, bookResponse{Error: "ISBN is required"})
		return
	}

	result, err := h.processor.ProcessSingle(r.Context(), body.ISBN)
	if err != nil {
		log.Warn("Single book submission failed",
			zap.String("isbn", body.ISBN),
			zap.String("error_kind", pipeline.ErrorKind(err)),
			zap.String("request_id", request.RequestID(r)),
			zap.Error(err),
		)
		response.JSON(w, r, statusForError(err), bookResponse{Error: pipeline.UserMessage(err)})
		return
	}

	response.JSON(w, r, http.StatusCreated, bookResponse{
		Success:  true,
		Book:     result.Book,
		NotionID: result.PageID,
	})
}

func (h *Handler) addBookBatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ISBNs []string `json:"isbns"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.JSON(w, r, http.StatusBadRequest, batchResponse{Error: "Invalid request body"})
		return
	}
	if len(body.ISBNs) == 0 {
		response.JSON(w, r, http.StatusBadRequest, batchResponse{Error: "ISBN list is required"})
		return
	}

	result := h.processor.ProcessBatch(r.Context(), body.ISBNs)
	response.OK(w, r, batchResponse{
		Success:   true,
		Processed: result.Processed,
		Total:     result.Total,
		Failed:    result.Failed,
		Errors:    result.Errors,
	})
}

func (h *Handler) addBookManual(w http.ResponseWriter, r *http.Request) {
	var entry model.ManualEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		response.JSON(w, r, http.StatusBadRequest, bookResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.processor.ProcessManual(r.Context(), &entry)
	if err != nil {
		log.Warn("Manual book submission failed",
			zap.String("title", entry.Title),
			zap.String("error_kind", pipeline.ErrorKind(err)),
			zap.String("request_id", request.RequestID(r)),
			zap.Error(err),
		)
		response.JSON(w, r, statusForError(err), bookResponse{Error: pipeline.UserMessage(err)})
		return
	}

	response.JSON(w, r, http.StatusCreated, bookResponse{
		Success:  true,
		Book:     result.Book,
		NotionID: result.PageID,
	})
}

func statusForError(err error) int {
	var submitErr *notion.SubmitError
	switch {
	case errors.Is(err, util.ErrInvalidISBN):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, notion.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &submitErr):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
