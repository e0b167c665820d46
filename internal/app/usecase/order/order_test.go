package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	err_storage "github.com/avGenie/go-order-tracker/internal/app/storage/api/errors"
	storage "github.com/avGenie/go-order-tracker/internal/app/storage/memory"
	usecase "github.com/avGenie/go-order-tracker/internal/app/usecase/errors"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/order/mock"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/transition"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCustomerID = "user-A1B2C3D4"

var baseTime = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

type testClock struct {
	mutex sync.Mutex
	now   time.Time
}

func (c *testClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.now = now
}

func sequentialIDs() func() entity.OrderID {
	var (
		mutex sync.Mutex
		next  int
	)

	return func() entity.OrderID {
		mutex.Lock()
		defer mutex.Unlock()

		next++
		return entity.OrderID(fmt.Sprintf("ORD-%08X", next))
	}
}

func newTestService(storage OrderStorage, publisher EventPublisher) (*Service, *testClock) {
	clock := &testClock{now: baseTime}

	service := New(storage, publisher)
	service.now = clock.Now
	service.newID = sequentialIDs()

	return service, clock
}

func requireValidationMessage(t *testing.T, err error, message string) *usecase.ValidationError {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, usecase.ErrValidation)

	var validationErr *usecase.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, message, validationErr.Message)

	return validationErr
}

func TestGenerateOrderID(t *testing.T) {
	seen := make(map[entity.OrderID]struct{})
	for i := 0; i < 100; i++ {
		id := generateOrderID()

		assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, id.String())
		seen[id] = struct{}{}
	}

	assert.Greater(t, len(seen), 90)
}

func TestCreateOrder(t *testing.T) {
	type want struct {
		err     string
		details map[string]any
	}
	tests := []struct {
		name       string
		customerID string

		want want
	}{
		{
			name:       "valid customer id",
			customerID: testCustomerID,
		},
		{
			name:       "lower case customer id",
			customerID: "user-a1b2c3d4",
		},
		{
			name:       "empty customer id",
			customerID: "",

			want: want{
				err: "customerId is required",
			},
		},
		{
			name:       "malformed customer id",
			customerID: "CUST-123",

			want: want{
				err:     "customerId must be in format user-XXXXXXXX (e.g., user-A1B2C3D4)",
				details: map[string]any{"providedId": "CUST-123"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service, _ := newTestService(storage.NewMemoryStorage(), nil)

			order, err := service.CreateOrder(context.Background(), test.customerID)
			if len(test.want.err) != 0 {
				validationErr := requireValidationMessage(t, err, test.want.err)
				assert.Equal(t, test.want.details, validationErr.Details)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.StatusPending, order.Status)
			assert.Equal(t, entity.CustomerID(test.customerID), order.CustomerID)
			assert.Equal(t, baseTime, order.PlacementDate)
			assert.NotEmpty(t, order.OrderID)
		})
	}
}

func TestCreateOrderRejectsGeneratedGarbage(t *testing.T) {
	service, _ := newTestService(storage.NewMemoryStorage(), nil)

	for i := 0; i < 50; i++ {
		customerID := gofakeit.Username()

		_, err := service.CreateOrder(context.Background(), customerID)
		assert.ErrorIs(t, err, usecase.ErrValidation, customerID)

		_, err = service.SearchOrders(context.Background(), customerID, "", "")
		assert.ErrorIs(t, err, usecase.ErrValidation, customerID)
	}
}

func TestCreateOrderFreshIDs(t *testing.T) {
	memory := storage.NewMemoryStorage()
	service := New(memory, nil)

	first, err := service.CreateOrder(context.Background(), testCustomerID)
	require.NoError(t, err)

	second, err := service.CreateOrder(context.Background(), testCustomerID)
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, first.OrderID.String())
}

func TestCreateOrderRetriesOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderStorage(ctrl)
	service, _ := newTestService(s, nil)

	gomock.InOrder(
		s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(err_storage.ErrOrderExists),
		s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil),
	)

	order, err := service.CreateOrder(context.Background(), testCustomerID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderID("ORD-00000002"), order.OrderID)
}

func TestCreateOrderGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		storageErr error
		calls      int
	}{
		{
			name:       "id collisions",
			storageErr: err_storage.ErrOrderExists,
			calls:      createOrderRetries,
		},
		{
			name:       "storage failure",
			storageErr: errors.New("test error"),
			calls:      1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := mock.NewMockOrderStorage(ctrl)
			service, _ := newTestService(s, nil)

			s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(test.storageErr).Times(test.calls)

			_, err := service.CreateOrder(context.Background(), testCustomerID)
			require.Error(t, err)
			assert.ErrorIs(t, err, test.storageErr)
			assert.NotErrorIs(t, err, usecase.ErrValidation)
		})
	}
}

func TestCreateOrderPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		publishErr error
	}{
		{
			name: "event published",
		},
		{
			name:       "publish failure does not fail the request",
			publishErr: errors.New("broker unavailable"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := mock.NewMockEventPublisher(ctrl)
			service, _ := newTestService(storage.NewMemoryStorage(), p)

			var published entity.OrderEvent
			p.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event entity.OrderEvent) error {
				published = event
				return test.publishErr
			})

			order, err := service.CreateOrder(context.Background(), testCustomerID)
			require.NoError(t, err)

			assert.Equal(t, entity.EventOrderCreated, published.Type)
			assert.Equal(t, order, published.Order)
			assert.Equal(t, baseTime, published.OccurredAt)
		})
	}
}

func TestSearchOrders(t *testing.T) {
	service, clock := newTestService(storage.NewMemoryStorage(), nil)
	ctx := context.Background()

	placements := []time.Time{
		baseTime.Add(48 * time.Hour),
		baseTime,
		baseTime.Add(24 * time.Hour),
	}
	for _, placement := range placements {
		clock.Set(placement)
		_, err := service.CreateOrder(ctx, testCustomerID)
		require.NoError(t, err)
	}

	clock.Set(baseTime.Add(time.Hour))
	_, err := service.CreateOrder(ctx, "user-FFFFFFFF")
	require.NoError(t, err)

	type want struct {
		placements []time.Time
		err        string
	}
	tests := []struct {
		name       string
		customerID string
		startDate  string
		endDate    string

		want want
	}{
		{
			name:       "all orders of customer sorted by placement",
			customerID: testCustomerID,

			want: want{
				placements: []time.Time{baseTime, baseTime.Add(24 * time.Hour), baseTime.Add(48 * time.Hour)},
			},
		},
		{
			name:       "inclusive start bound",
			customerID: testCustomerID,
			startDate:  "2024-03-11T12:00:00Z",

			want: want{
				placements: []time.Time{baseTime.Add(24 * time.Hour), baseTime.Add(48 * time.Hour)},
			},
		},
		{
			name:       "inclusive end bound",
			customerID: testCustomerID,
			endDate:    "2024-03-11T12:00:00Z",

			want: want{
				placements: []time.Time{baseTime, baseTime.Add(24 * time.Hour)},
			},
		},
		{
			name:       "both bounds with date only values",
			customerID: testCustomerID,
			startDate:  "2024-03-11",
			endDate:    "2024-03-12",

			want: want{
				placements: []time.Time{baseTime.Add(24 * time.Hour)},
			},
		},
		{
			name:       "start after every order",
			customerID: testCustomerID,
			startDate:  "2030-01-01",

			want: want{
				placements: []time.Time{},
			},
		},
		{
			name:       "unknown customer",
			customerID: "user-00000000",

			want: want{
				placements: []time.Time{},
			},
		},
		{
			name:       "missing customer id",
			customerID: "",

			want: want{
				err: "customerId is required",
			},
		},
		{
			name:       "malformed customer id",
			customerID: "user-XYZ",

			want: want{
				err: "customerId must be in format user-XXXXXXXX (e.g., user-A1B2C3D4)",
			},
		},
		{
			name:       "malformed start date",
			customerID: testCustomerID,
			startDate:  "not-a-date",

			want: want{
				err: "Invalid startDate format",
			},
		},
		{
			name:       "malformed end date",
			customerID: testCustomerID,
			endDate:    "2024-13-45",

			want: want{
				err: "Invalid endDate format",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orders, err := service.SearchOrders(ctx, test.customerID, test.startDate, test.endDate)
			if len(test.want.err) != 0 {
				requireValidationMessage(t, err, test.want.err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, orders)

			got := make([]time.Time, 0, len(orders))
			for _, order := range orders {
				assert.Equal(t, entity.CustomerID(test.customerID), order.CustomerID)
				got = append(got, order.PlacementDate)
			}
			assert.Equal(t, test.want.placements, got)
		})
	}
}

func TestSearchOrdersStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderStorage(ctrl)
	service, _ := newTestService(s, nil)

	s.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("test error"))

	_, err := service.SearchOrders(context.Background(), testCustomerID, "", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrValidation)
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("paid twice is apply then noop", func(t *testing.T) {
		service, _ := newTestService(storage.NewMemoryStorage(), nil)

		order, err := service.CreateOrder(ctx, testCustomerID)
		require.NoError(t, err)

		updated, kind, err := service.UpdateOrderStatus(ctx, order.OrderID.String(), "paid")
		require.NoError(t, err)
		assert.Equal(t, transition.Apply, kind)
		assert.Equal(t, entity.StatusPaid, updated.Status)

		updated, kind, err = service.UpdateOrderStatus(ctx, order.OrderID.String(), "paid")
		require.NoError(t, err)
		assert.Equal(t, transition.NoOp, kind)
		assert.Equal(t, entity.StatusPaid, updated.Status)
	})

	t.Run("pending on pending is rejected", func(t *testing.T) {
		service, _ := newTestService(storage.NewMemoryStorage(), nil)

		order, err := service.CreateOrder(ctx, testCustomerID)
		require.NoError(t, err)

		_, kind, err := service.UpdateOrderStatus(ctx, order.OrderID.String(), "pending")
		requireValidationMessage(t, err, "Cannot mark order as pending")
		assert.Equal(t, transition.Rejected, kind)
	})

	t.Run("full lifecycle", func(t *testing.T) {
		service, _ := newTestService(storage.NewMemoryStorage(), nil)

		order, err := service.CreateOrder(ctx, testCustomerID)
		require.NoError(t, err)

		for _, status := range []string{"paid", "shipped", "delivered"} {
			updated, kind, err := service.UpdateOrderStatus(ctx, order.OrderID.String(), status)
			require.NoError(t, err)
			assert.Equal(t, transition.Apply, kind)
			assert.Equal(t, entity.OrderStatus(status), updated.Status)
			assert.Equal(t, order.PlacementDate, updated.PlacementDate)
			assert.Equal(t, order.CustomerID, updated.CustomerID)
		}
	})

	t.Run("shipped order cannot be cancelled", func(t *testing.T) {
		service, _ := newTestService(storage.NewMemoryStorage(), nil)

		order, err := service.CreateOrder(ctx, testCustomerID)
		require.NoError(t, err)

		for _, status := range []string{"paid", "shipped"} {
			_, _, err := service.UpdateOrderStatus(ctx, order.OrderID.String(), status)
			require.NoError(t, err)
		}

		_, _, err = service.UpdateOrderStatus(ctx, order.OrderID.String(), "cancelled")
		requireValidationMessage(t, err, "Cannot cancel an order that is shipped")

		orders, err := service.SearchOrders(ctx, testCustomerID, "", "")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, entity.StatusShipped, orders[0].Status)
	})

	t.Run("missing status", func(t *testing.T) {
		service, _ := newTestService(storage.NewMemoryStorage(), nil)

		_, _, err := service.UpdateOrderStatus(ctx, "ORD-00000001", "")
		requireValidationMessage(t, err, "status is required")
	})

	t.Run("unknown status lists valid ones", func(t *testing.T) {
		service, _ := newTestService(storage.NewMemoryStorage(), nil)

		_, _, err := service.UpdateOrderStatus(ctx, "ORD-00000001", "confirmed")
		validationErr := requireValidationMessage(t, err, "Invalid status")
		assert.Equal(t,
			[]string{"pending", "paid", "shipped", "delivered", "cancelled"},
			validationErr.Details["validStatuses"],
		)
	})

	t.Run("unknown order", func(t *testing.T) {
		service, _ := newTestService(storage.NewMemoryStorage(), nil)

		_, _, err := service.UpdateOrderStatus(ctx, "ORD-DEADBEEF", "paid")
		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrNotFound)
		assert.Equal(t, "Order ORD-DEADBEEF not found", err.Error())
	})
}

func TestUpdateOrderStatusPublishesOnApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mock.NewMockEventPublisher(ctrl)
	service, clock := newTestService(storage.NewMemoryStorage(), p)
	ctx := context.Background()

	p.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	order, err := service.CreateOrder(ctx, testCustomerID)
	require.NoError(t, err)

	changedAt := baseTime.Add(time.Minute)
	clock.Set(changedAt)

	var published entity.OrderEvent
	p.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event entity.OrderEvent) error {
		published = event
		return nil
	}).Times(1)

	_, kind, err := service.UpdateOrderStatus(ctx, order.OrderID.String(), "paid")
	require.NoError(t, err)
	require.Equal(t, transition.Apply, kind)

	_, kind, err = service.UpdateOrderStatus(ctx, order.OrderID.String(), "paid")
	require.NoError(t, err)
	require.Equal(t, transition.NoOp, kind)

	_, _, err = service.UpdateOrderStatus(ctx, order.OrderID.String(), "delivered")
	require.Error(t, err)

	assert.Equal(t, entity.EventOrderStatusChanged, published.Type)
	assert.Equal(t, entity.StatusPending, published.PreviousStatus)
	assert.Equal(t, entity.StatusPaid, published.Order.Status)
	assert.Equal(t, changedAt, published.OccurredAt)
}

func TestUpdateOrderStatusStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderStorage(ctrl)
	service, _ := newTestService(s, nil)

	s.EXPECT().UpdateOrderFunc(gomock.Any(), entity.OrderID("ORD-00000001"), gomock.Any()).
		Return(entity.Order{}, errors.New("test error"))

	_, _, err := service.UpdateOrderStatus(context.Background(), "ORD-00000001", "paid")
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrValidation)
	assert.NotErrorIs(t, err, usecase.ErrNotFound)
}

func TestConcurrentPaidUpdates(t *testing.T) {
	ctx := context.Background()

	for round := 0; round < 20; round++ {
		service, _ := newTestService(storage.NewMemoryStorage(), nil)

		order, err := service.CreateOrder(ctx, testCustomerID)
		require.NoError(t, err)

		var (
			wg    sync.WaitGroup
			start = make(chan struct{})
			kinds = make([]transition.Kind, 2)
			errs  = make([]error, 2)
		)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start

				_, kinds[i], errs[i] = service.UpdateOrderStatus(ctx, order.OrderID.String(), "paid")
			}(i)
		}
		close(start)
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		assert.ElementsMatch(t, []transition.Kind{transition.Apply, transition.NoOp}, kinds)

		orders, err := service.SearchOrders(ctx, testCustomerID, "", "")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, entity.StatusPaid, orders[0].Status)
	}
}

func TestCreateOrderTruncatesPlacementDate(t *testing.T) {
	service, clock := newTestService(storage.NewMemoryStorage(), nil)
	clock.Set(baseTime.Add(123*time.Millisecond + 456789*time.Nanosecond))

	created, err := service.CreateOrder(context.Background(), testCustomerID)
	require.NoError(t, err)
	assert.Equal(t, baseTime.Add(123*time.Millisecond), created.PlacementDate)

	orders, err := service.SearchOrders(context.Background(), testCustomerID, "", "2024-03-10T12:00:00.123Z")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created.OrderID, orders[0].OrderID)
}
