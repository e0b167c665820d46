package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	httputils "github.com/avGenie/go-order-tracker/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-tracker/internal/app/converter"
	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/avGenie/go-order-tracker/internal/app/model"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/transition"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	OrderIDParam = "orderId"

	ErrInvalidBody = "Invalid JSON body"
)

//go:generate mockgen -source=orders.go -destination=mock/orders_mock.go -package=mock

type OrderService interface {
	CreateOrder(ctx context.Context, customerID string) (entity.Order, error)
	SearchOrders(ctx context.Context, customerID, startDate, endDate string) (entity.Orders, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (entity.Order, transition.Kind, error)
}

type Order struct {
	service OrderService
}

func New(service OrderService) Order {
	return Order{
		service: service,
	}
}

func (p *Order) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.CreateOrderRequest
		err := decodeBody(r, &request)
		if err != nil {
			zap.L().Info("error while decoding create order request", zap.Error(err))
			httputils.WriteError(w, http.StatusBadRequest, model.ErrorCodeValidation, ErrInvalidBody, nil)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.service.CreateOrder(ctx, request.CustomerID)
		if err != nil {
			httputils.WriteUsecaseError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertOrderToOutput(order))
	}
}

func (p *Order) SearchOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := p.service.SearchOrders(ctx, query.Get("customerId"), query.Get("startDate"), query.Get("endDate"))
		if err != nil {
			httputils.WriteUsecaseError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrdersToOutput(orders))
	}
}

// UpdateOrderStatus takes the requested status from the request body.
func (p *Order) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.UpdateOrderStatusRequest
		err := decodeBody(r, &request)
		if err != nil {
			zap.L().Info("error while decoding update order status request", zap.Error(err))
			httputils.WriteError(w, http.StatusBadRequest, model.ErrorCodeValidation, ErrInvalidBody, nil)
			return
		}

		p.updateOrderStatus(w, r, request.Status)
	}
}

// MarkOrderStatus serves the per-status routes, where the path names the
// requested status and the body is ignored.
func (p *Order) MarkOrderStatus(status entity.OrderStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.updateOrderStatus(w, r, status.String())
	}
}

func (p *Order) updateOrderStatus(w http.ResponseWriter, r *http.Request, status string) {
	orderID := chi.URLParam(r, OrderIDParam)

	ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
	defer cancel()

	order, kind, err := p.service.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		httputils.WriteUsecaseError(w, err)
		return
	}

	zap.L().Debug("order status request handled", zap.String("order_id", orderID), zap.String("outcome", kind.String()))

	httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToOutput(order))
}

// decodeBody treats an empty body as an empty request so that the service
// reports the missing field.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error while decoding request body: %w", err)
	}

	return nil
}
