package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	v1 "github.com/karigane/bookscan/api/v1"
	"github.com/karigane/bookscan/config"
	"github.com/karigane/bookscan/http/response"
	"github.com/karigane/bookscan/log"
	"github.com/karigane/bookscan/pipeline"
	"github.com/karigane/bookscan/store"
	"github.com/karigane/bookscan/version"
	"go.uber.org/zap"
)

// StartServer starts the HTTP server
func StartServer(ctx context.Context, store *store.Store, processor *pipeline.Processor) (*http.Server, error) {
	addr := config.Opts.Host
	port := config.Opts.Port
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", addr, port),
		Handler: setupHandler(store, processor),
	}

	startHTTPServer(server)

	return server, nil
}

func startHTTPServer(server *http.Server) {
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()
}

type healthStatus struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	Version          string `json:"version"`
	NotionConfigured bool   `json:"notion_configured"`
	CatalogKeySet    bool   `json:"catalog_key_set"`
	Journal          string `json:"journal"`
}

func setupHandler(store *store.Store, processor *pipeline.Processor) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware)

	apiHandler := v1.NewHandler(store, processor)
	v1.Server(router, apiHandler)

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{
			Status:           "healthy",
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			Version:          version.GetCurrentVersion(),
			NotionConfigured: config.Opts.NotionConfigured(),
			CatalogKeySet:    config.Opts.HasCatalogKey(),
			Journal:          "ok",
		}
		if err := store.Ping(); err != nil {
			log.Error("Journal database unreachable", zap.Error(err))
			status.Journal = "error"
		}
		response.OK(w, r, status)
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	return router
}
