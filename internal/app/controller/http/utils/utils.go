package httputils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/avGenie/go-order-tracker/internal/app/model"
	usecase "github.com/avGenie/go-order-tracker/internal/app/usecase/errors"
	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second

	ErrNoToken      = "No token provided"
	ErrInvalidToken = "Invalid or expired token"
	ErrInternal     = "Internal server error"
)

func GetCustomerIDFromContext(r *http.Request) (entity.CustomerIDCtx, error) {
	customerIDCtx, ok := r.Context().Value(entity.CustomerIDCtxKey{}).(entity.CustomerIDCtx)
	if !ok {
		return entity.CustomerIDCtx{}, fmt.Errorf("customer id couldn't obtain from context")
	}

	if customerIDCtx.StatusCode == http.StatusOK && !customerIDCtx.CustomerID.Valid() {
		return entity.CustomerIDCtx{}, fmt.Errorf("invalid customer id with status ok")
	}

	return customerIDCtx, nil
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]any) {
	WriteJSON(w, statusCode, model.ErrorResponse{
		Error:   code,
		Message: message,
		Details: details,
	})
}

// WriteUsecaseError maps errors returned by the order service to the error
// response. Anything unclassified is reported as an internal error without
// leaking its text.
func WriteUsecaseError(w http.ResponseWriter, err error) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusBadRequest, model.ErrorCodeValidation, validationErr.Message, validationErr.Details)
		return
	}

	var notFoundErr *usecase.NotFoundError
	if errors.As(err, &notFoundErr) {
		WriteError(w, http.StatusNotFound, model.ErrorCodeNotFound, notFoundErr.Error(), nil)
		return
	}

	zap.L().Error("unexpected error while processing request", zap.Error(err))
	WriteError(w, http.StatusInternalServerError, model.ErrorCodeInternal, ErrInternal, nil)
}
