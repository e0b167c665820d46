package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		statusCode int
		body       string
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"ok":true}`))
			},
			statusCode: http.StatusCreated,
			body:       `{"ok":true}`,
		},
		{
			name: "implicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("ok"))
			},
			statusCode: http.StatusOK,
			body:       "ok",
		},
		{
			name: "no body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			statusCode: http.StatusNoContent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			writer := httptest.NewRecorder()

			LoggerMiddleware(test.handler).ServeHTTP(writer, request)

			assert.Equal(t, test.statusCode, writer.Code)
			assert.Equal(t, test.body, writer.Body.String())
		})
	}
}

func TestLogResponseWriterRecordsSize(t *testing.T) {
	data := &responseData{}
	writer := &logResponseWriter{
		ResponseWriter: httptest.NewRecorder(),
		responseData:   data,
	}

	writer.Write([]byte("hello"))
	writer.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, data.statusCode)
	assert.Equal(t, 11, data.size)
}
