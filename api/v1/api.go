package v1

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/karigane/bookscan/middleware"
	"github.com/karigane/bookscan/pipeline"
	"github.com/karigane/bookscan/store"
)

type Handler struct {
	store     *store.Store
	processor *pipeline.Processor
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(store *store.Store, processor *pipeline.Processor) *Handler {
	return &Handler{
		store:     store,
		processor: processor,
	}
}

func Server(router *mux.Router, handler *Handler) {
	router.HandleFunc("/", handler.home).Methods(http.MethodGet)

	sr := router.PathPrefix("/api/v1").Subrouter()
	middleware := middleware.NewMiddleware()
	sr.Use(middleware.HandleCORS)
	sr.Methods(http.MethodOptions)

	sr.HandleFunc("/book", handler.addBookSingle).Methods(http.MethodPost)
	sr.HandleFunc("/books", handler.addBookBatch).Methods(http.MethodPost)
	sr.HandleFunc("/book/manual", handler.addBookManual).Methods(http.MethodPost)
	sr.HandleFunc("/submissions", handler.listSubmissions).Methods(http.MethodGet)
}
