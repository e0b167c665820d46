package logger

import (
	"net/http"
	"time"

	"github.com/avGenie/go-order-tracker/internal/app/metrics"
	"go.uber.org/zap"
)

type responseData struct {
	statusCode int
	size       int
}

type logResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (r *logResponseWriter) Write(b []byte) (int, error) {
	if r.responseData.statusCode == 0 {
		r.responseData.statusCode = http.StatusOK
	}

	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size

	return size, err
}

func (r *logResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.statusCode = statusCode
}

func LoggerMiddleware(h http.Handler) http.Handler {
	logFn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		respData := &responseData{
			statusCode: 0,
			size:       0,
		}
		writer := logResponseWriter{
			ResponseWriter: w,
			responseData:   respData,
		}
		h.ServeHTTP(&writer, r)

		duration := time.Since(start)
		if respData.statusCode == 0 {
			respData.statusCode = http.StatusOK
		}

		metrics.HTTPRequest(r.Method, respData.statusCode)

		zap.L().Info(
			"got incoming HTTP request",
			zap.String("uri", r.RequestURI),
			zap.String("method", r.Method),
			zap.Duration("duration", duration),
			zap.Int("status", respData.statusCode),
			zap.Int("size", respData.size),
		)
	}

	return http.HandlerFunc(logFn)
}
