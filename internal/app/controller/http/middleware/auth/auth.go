package auth

import (
	"net/http"

	httputils "github.com/avGenie/go-order-tracker/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-tracker/internal/app/model"
	"go.uber.org/zap"
)

// AuthMiddleware rejects requests whose token was not accepted by the token
// parser middleware, which has to run first.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerCtx, err := httputils.GetCustomerIDFromContext(r)
		if err != nil {
			zap.L().Error("error while getting customer id from context", zap.Error(err))
			httputils.WriteError(w, http.StatusUnauthorized, model.ErrorCodeUnauthorized, httputils.ErrInvalidToken, nil)
			return
		}

		if customerCtx.StatusCode != http.StatusOK {
			httputils.WriteError(w, customerCtx.StatusCode, model.ErrorCodeUnauthorized, customerCtx.Reason, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
