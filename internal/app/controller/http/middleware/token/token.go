package token

import (
	"context"
	"net/http"
	"strings"

	httputils "github.com/avGenie/go-order-tracker/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-tracker/internal/app/entity"
	usecase "github.com/avGenie/go-order-tracker/internal/app/usecase/token"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

type CustomerIDParser interface {
	GetCustomerIDFromAuthHeader(header string) (entity.CustomerID, error)
}

// TokenParserMiddleware stores the outcome of bearer token parsing in the
// request context. It never rejects the request itself.
func TokenParserMiddleware(parser CustomerIDParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			customerCtx := processAuthCustomerID(parser, r.Header.Get(usecase.AuthHeader))

			ctx := context.WithValue(r.Context(), entity.CustomerIDCtxKey{}, customerCtx)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

func processAuthCustomerID(parser CustomerIDParser, authHeader string) entity.CustomerIDCtx {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		zap.L().Debug("bearer authorization header is absent")

		return entity.CreateRejectedCustomerIDCtx(http.StatusUnauthorized, httputils.ErrNoToken)
	}

	customerID, err := parser.GetCustomerIDFromAuthHeader(authHeader)
	if err != nil {
		zap.L().Info("error while parsing auth header", zap.Error(err))

		return entity.CreateRejectedCustomerIDCtx(http.StatusUnauthorized, httputils.ErrInvalidToken)
	}

	if !customerID.Valid() {
		zap.L().Info("empty customer id in authorization token")

		return entity.CreateRejectedCustomerIDCtx(http.StatusUnauthorized, httputils.ErrInvalidToken)
	}

	return entity.CreateCustomerIDCtx(customerID, http.StatusOK)
}
