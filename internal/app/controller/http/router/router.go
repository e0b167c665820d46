package router

import (
	"net/http"

	"github.com/avGenie/go-order-tracker/internal/app/controller/http/auth"
	authmw "github.com/avGenie/go-order-tracker/internal/app/controller/http/middleware/auth"
	"github.com/avGenie/go-order-tracker/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-order-tracker/internal/app/controller/http/middleware/token"
	"github.com/avGenie/go-order-tracker/internal/app/controller/http/middleware/tracing"
	"github.com/avGenie/go-order-tracker/internal/app/controller/http/orders"
	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var statusRoutes = []entity.OrderStatus{
	entity.StatusPaid,
	entity.StatusShipped,
	entity.StatusDelivered,
	entity.StatusCancelled,
}

func CreateRouter(authenticator auth.Auth, order orders.Order, tokenParser token.CustomerIDParser) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(logger.LoggerMiddleware)
	r.Use(tracing.TracingMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/v1/generate-uid", authenticator.GenerateCustomerID())
	r.Post("/auth/token", authenticator.IssueToken())

	r.Route("/v1/orders", func(r chi.Router) {
		r.Use(token.TokenParserMiddleware(tokenParser))
		r.Use(authmw.AuthMiddleware)

		r.Post("/", order.CreateOrder())
		r.Get("/", order.SearchOrders())

		r.Post("/{"+orders.OrderIDParam+"}/status", order.UpdateOrderStatus())
		for _, status := range statusRoutes {
			r.Post("/{"+orders.OrderIDParam+"}/"+status.String(), order.MarkOrderStatus(status))
		}
	})

	return r
}
