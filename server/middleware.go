package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/karigane/bookscan/http/request"
	"github.com/karigane/bookscan/log"
	"go.uber.org/zap"
)

func middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := request.FindClientIP(r)
		requestID := uuid.New().String()

		ctx := r.Context()
		ctx = context.WithValue(ctx, request.ClientIPContextKey, clientIP)
		ctx = context.WithValue(ctx, request.RequestIDContextKey, requestID)
		r = r.WithContext(ctx)

		w.Header().Set("X-Request-Id", requestID)

		t1 := time.Now()
		defer func() {
			log.Debug("Incoming request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("proto", r.Proto),
				zap.String("client_ip", clientIP),
				zap.String("request_id", requestID),
				zap.Duration("duration", time.Since(t1)))
		}()

		next.ServeHTTP(w, r)
	})
}
