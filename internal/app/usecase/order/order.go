package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avGenie/go-order-tracker/internal/app/converter"
	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/avGenie/go-order-tracker/internal/app/metrics"
	err_storage "github.com/avGenie/go-order-tracker/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-tracker/internal/app/storage/api/model"
	usecase "github.com/avGenie/go-order-tracker/internal/app/usecase/errors"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/transition"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/validator"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	orderIDPrefix      = "ORD-"
	createOrderRetries = 5

	// placement dates are served with millisecond precision and have to compare
	// equal to the value a client sends back as a search bound
	placementPrecision = time.Millisecond

	tracerName = "github.com/avGenie/go-order-tracker/internal/app/usecase/order"
)

//go:generate mockgen -source=order.go -destination=mock/order_mock.go -package=mock

type OrderStorage interface {
	CreateOrder(ctx context.Context, order entity.Order) error
	ListOrders(ctx context.Context) (entity.Orders, error)
	UpdateOrderFunc(ctx context.Context, orderID entity.OrderID, updater model.OrderUpdater) (entity.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.OrderEvent) error
}

// Service runs the create, search and status update use cases on top of the
// order storage.
type Service struct {
	storage   OrderStorage
	publisher EventPublisher
	tracer    trace.Tracer

	newID func() entity.OrderID
	now   func() time.Time
}

func New(storage OrderStorage, publisher EventPublisher) *Service {
	return &Service{
		storage:   storage,
		publisher: publisher,
		tracer:    otel.Tracer(tracerName),
		newID:     generateOrderID,
		now:       time.Now,
	}
}

func generateOrderID() entity.OrderID {
	segment := strings.Split(uuid.New().String(), "-")[0]

	return entity.OrderID(orderIDPrefix + strings.ToUpper(segment))
}

func (s *Service) CreateOrder(ctx context.Context, customerID string) (entity.Order, error) {
	ctx, span := s.tracer.Start(ctx, "Service.CreateOrder", trace.WithAttributes(
		attribute.String("customer.id", customerID),
	))
	defer span.End()

	if err := validateCustomerID(customerID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return entity.Order{}, err
	}

	order := entity.Order{
		CustomerID:    entity.CustomerID(customerID),
		PlacementDate: s.now().UTC().Truncate(placementPrecision),
		Status:        entity.StatusPending,
	}

	var err error
	for attempt := 0; attempt < createOrderRetries; attempt++ {
		order.OrderID = s.newID()

		err = s.storage.CreateOrder(ctx, order)
		if err == nil {
			break
		}

		if !errors.Is(err, err_storage.ErrOrderExists) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "storage failure")
			return entity.Order{}, fmt.Errorf("error while creating order: %w", err)
		}

		zap.L().Warn("generated order id already exists", zap.String("order_id", order.OrderID.String()), zap.Int("attempt", attempt+1))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order id collisions")
		return entity.Order{}, fmt.Errorf("error while creating order after %d attempts: %w", createOrderRetries, err)
	}

	span.SetAttributes(attribute.String("order.id", order.OrderID.String()))
	metrics.OrderCreated()

	zap.L().Info("order created", zap.String("order_id", order.OrderID.String()), zap.String("customer_id", customerID))

	s.publish(ctx, entity.CreateOrderCreatedEvent(order))

	return order, nil
}

func (s *Service) SearchOrders(ctx context.Context, customerID, startDate, endDate string) (entity.Orders, error) {
	ctx, span := s.tracer.Start(ctx, "Service.SearchOrders", trace.WithAttributes(
		attribute.String("customer.id", customerID),
		attribute.String("search.start_date", startDate),
		attribute.String("search.end_date", endDate),
	))
	defer span.End()

	if err := validateCustomerID(customerID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	from, hasFrom, err := parseBound(startDate, "Invalid startDate format")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	to, hasTo, err := parseBound(endDate, "Invalid endDate format")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	orders, err := s.storage.ListOrders(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failure")
		return nil, fmt.Errorf("error while listing orders: %w", err)
	}

	result := make(entity.Orders, 0)
	for _, order := range orders {
		if order.CustomerID.String() != customerID {
			continue
		}
		if hasFrom && order.PlacementDate.Before(from) {
			continue
		}
		if hasTo && order.PlacementDate.After(to) {
			continue
		}

		result = append(result, order)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PlacementDate.Before(result[j].PlacementDate)
	})

	span.SetAttributes(attribute.Int("search.results", len(result)))

	return result, nil
}

// UpdateOrderStatus moves the order to the requested status. The decision is
// taken under the storage write lock, so concurrent requests for the same order
// are judged against the status left by the previous one.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID, status string) (entity.Order, transition.Kind, error) {
	ctx, span := s.tracer.Start(ctx, "Service.UpdateOrderStatus", trace.WithAttributes(
		attribute.String("order.id", orderID),
		attribute.String("order.requested_status", status),
	))
	defer span.End()

	if len(status) == 0 {
		err := usecase.NewValidationError("status is required")
		span.SetStatus(codes.Error, err.Error())
		return entity.Order{}, transition.Rejected, err
	}

	requested, ok := validator.ParseOrderStatus(status)
	if !ok {
		err := usecase.NewValidationErrorWithDetails("Invalid status", map[string]any{
			"validStatuses": converter.ConvertOrderStatusesToOutput(entity.OrderStatuses()),
		})
		span.SetStatus(codes.Error, err.Error())
		return entity.Order{}, transition.Rejected, err
	}

	var (
		outcome  transition.Outcome
		previous entity.OrderStatus
	)
	order, err := s.storage.UpdateOrderFunc(ctx, entity.OrderID(orderID), func(order entity.Order) (entity.Order, error) {
		previous = order.Status
		outcome = transition.Decide(order.Status, requested)
		if err := outcome.Err(); err != nil {
			return order, err
		}

		if outcome.Kind == transition.Apply {
			order.Status = requested
		}

		return order, nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		if errors.Is(err, err_storage.ErrOrderNotFound) {
			return entity.Order{}, transition.Rejected, usecase.NewNotFoundError(orderID)
		}

		if errors.Is(err, usecase.ErrValidation) {
			metrics.StatusTransition(requested.String(), transition.Rejected.String())
			zap.L().Info("order status change rejected",
				zap.String("order_id", orderID),
				zap.String("current_status", previous.String()),
				zap.String("requested_status", requested.String()),
			)

			return entity.Order{}, transition.Rejected, err
		}

		span.RecordError(err)
		return entity.Order{}, transition.Rejected, fmt.Errorf("error while updating order status: %w", err)
	}

	span.SetAttributes(attribute.String("order.transition", outcome.Kind.String()))
	metrics.StatusTransition(requested.String(), outcome.Kind.String())

	if outcome.Kind == transition.Apply {
		zap.L().Info("order status changed",
			zap.String("order_id", orderID),
			zap.String("previous_status", previous.String()),
			zap.String("status", order.Status.String()),
		)

		s.publish(ctx, entity.CreateStatusChangedEvent(order, previous, s.now().UTC()))
	}

	return order, outcome.Kind, nil
}

// publish is called outside of the storage lock. A failed publish never fails
// the request.
func (s *Service) publish(ctx context.Context, event entity.OrderEvent) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(ctx, event)
	if err != nil {
		zap.L().Error("error while publishing order event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("order_id", event.Order.OrderID.String()),
		)
	}
}

func validateCustomerID(customerID string) error {
	if len(customerID) == 0 {
		return usecase.NewValidationError("customerId is required")
	}

	if !validator.CustomerIDValidation(customerID) {
		return usecase.NewValidationErrorWithDetails(
			"customerId must be in format user-XXXXXXXX (e.g., user-A1B2C3D4)",
			map[string]any{"providedId": customerID},
		)
	}

	return nil
}

func parseBound(value, message string) (time.Time, bool, error) {
	if len(value) == 0 {
		return time.Time{}, false, nil
	}

	bound, ok := validator.ParseDate(value)
	if !ok {
		return time.Time{}, false, usecase.NewValidationError(message)
	}

	return bound, true, nil
}
