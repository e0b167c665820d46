package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	httputils "github.com/avGenie/go-order-tracker/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/avGenie/go-order-tracker/internal/app/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	customerIDPrefix = "user-"

	ErrCustomerIDRequired = "customerId is required"
)

//go:generate mockgen -source=auth.go -destination=mock/auth_mock.go -package=mock

type TokenBuilder interface {
	BuildJWTString(customerID entity.CustomerID) (string, error)
	TTL() time.Duration
}

type Auth struct {
	tokens TokenBuilder
}

func New(tokens TokenBuilder) Auth {
	return Auth{
		tokens: tokens,
	}
}

// GenerateCustomerID hands out a customer id in the format accepted by the
// order endpoints.
func (a *Auth) GenerateCustomerID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segment := strings.Split(uuid.New().String(), "-")[0]

		httputils.WriteJSON(w, http.StatusOK, model.CustomerIDResponse{
			CustomerID: customerIDPrefix + segment,
		})
	}
}

func (a *Auth) IssueToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.TokenRequest
		defer r.Body.Close()

		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil || len(request.CustomerID) == 0 {
			zap.L().Info("customer id is absent in token request", zap.Error(err))
			httputils.WriteError(w, http.StatusBadRequest, model.ErrorCodeValidation, ErrCustomerIDRequired, nil)
			return
		}

		token, err := a.tokens.BuildJWTString(entity.CustomerID(request.CustomerID))
		if err != nil {
			zap.L().Error("error while building token", zap.Error(err))
			httputils.WriteError(w, http.StatusInternalServerError, model.ErrorCodeInternal, httputils.ErrInternal, nil)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.TokenResponse{
			Token:     token,
			ExpiresIn: formatTTL(a.tokens.TTL()),
		})
	}
}

// formatTTL drops zero minute and second units, so an hour reads "1h".
func formatTTL(ttl time.Duration) string {
	out := ttl.String()
	if strings.HasSuffix(out, "m0s") {
		out = strings.TrimSuffix(out, "0s")
	}
	if strings.HasSuffix(out, "h0m") {
		out = strings.TrimSuffix(out, "0m")
	}

	return out
}
