package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/service"
)

func validOrderRequest() service.CreateOrderRequest {
	return service.CreateOrderRequest{
		RiderID:  100,
		FromCity: "Уфа",
		ToCity:   "Туймазы",
		Tariff:   "Комфорт",
		Hour:     18,
		Minute:   30,
		Phone:    "+79271234567",
	}
}

func TestCreateOrder_Success(t *testing.T) {
	t.Parallel()

	orderRepo := NewMockOrderRepository()
	svc := service.NewOrderService(orderRepo)

	order, err := svc.CreateOrder(context.Background(), validOrderRequest())
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if order.ID == 0 {
		t.Error("expected assigned order id")
	}
	if order.Status != domain.StatusWaiting {
		t.Errorf("expected status %s, got %s", domain.StatusWaiting, order.Status)
	}
	if order.Time.String() != "18:30" {
		t.Errorf("expected trip time 18:30, got %s", order.Time)
	}
	if order.Phone != "+79271234567" {
		t.Errorf("unexpected phone %s", order.Phone)
	}
}

func TestCreateOrder_NormalizesPhone(t *testing.T) {
	t.Parallel()

	svc := service.NewOrderService(NewMockOrderRepository())

	req := validOrderRequest()
	req.Phone = "8 (927) 123-45-67"

	order, err := svc.CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Phone != "+79271234567" {
		t.Errorf("expected normalized phone +79271234567, got %s", order.Phone)
	}
}

func TestCreateOrder_SameRouteBothWays(t *testing.T) {
	t.Parallel()

	svc := service.NewOrderService(NewMockOrderRepository())

	// From and to may repeat the same city; the wizard does not forbid it.
	req := validOrderRequest()
	req.FromCity = "Октябрьский"
	req.ToCity = "Октябрьский"

	if _, err := svc.CreateOrder(context.Background(), req); err != nil {
		t.Errorf("expected same-city order to be accepted, got %v", err)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	t.Parallel()

	svc := service.NewOrderService(NewMockOrderRepository())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*service.CreateOrderRequest)
		want   error
	}{
		{
			name:   "missing rider",
			mutate: func(r *service.CreateOrderRequest) { r.RiderID = 0 },
			want:   service.ErrInvalidRiderID,
		},
		{
			name:   "unknown from city",
			mutate: func(r *service.CreateOrderRequest) { r.FromCity = "Казань" },
			want:   service.ErrInvalidCity,
		},
		{
			name:   "unknown to city",
			mutate: func(r *service.CreateOrderRequest) { r.ToCity = "Москва" },
			want:   service.ErrInvalidCity,
		},
		{
			name:   "unknown tariff",
			mutate: func(r *service.CreateOrderRequest) { r.Tariff = "Эконом" },
			want:   service.ErrInvalidTariff,
		},
		{
			name:   "hour out of range",
			mutate: func(r *service.CreateOrderRequest) { r.Hour = 24 },
			want:   service.ErrInvalidTripTime,
		},
		{
			name:   "minute out of range",
			mutate: func(r *service.CreateOrderRequest) { r.Minute = 60 },
			want:   service.ErrInvalidTripTime,
		},
		{
			name:   "unparseable phone",
			mutate: func(r *service.CreateOrderRequest) { r.Phone = "нет" },
			want:   service.ErrInvalidPhone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validOrderRequest()
			tc.mutate(&req)
			_, err := svc.CreateOrder(ctx, req)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestListWaiting_ExcludesClaimed(t *testing.T) {
	t.Parallel()

	orderRepo := NewMockOrderRepository()
	svc := service.NewOrderService(orderRepo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateOrder(ctx, validOrderRequest()); err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	won, err := orderRepo.TryTransitionToClaimed(ctx, 2)
	if err != nil || !won {
		t.Fatalf("transition failed: won=%v err=%v", won, err)
	}

	waiting, err := svc.ListWaiting(ctx)
	if err != nil {
		t.Fatalf("list waiting failed: %v", err)
	}
	if len(waiting) != 2 {
		t.Fatalf("expected 2 waiting orders, got %d", len(waiting))
	}
	for _, o := range waiting {
		if o.ID == 2 {
			t.Error("claimed order must not appear in the waiting feed")
		}
	}
}

func TestListRiderOrders_NewestFirst(t *testing.T) {
	t.Parallel()

	orderRepo := NewMockOrderRepository()
	svc := service.NewOrderService(orderRepo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateOrder(ctx, validOrderRequest()); err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	history, err := svc.ListRiderOrders(ctx, 100)
	if err != nil {
		t.Fatalf("list rider orders failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(history))
	}
	if history[0].ID != 3 || history[2].ID != 1 {
		t.Errorf("expected newest first, got ids %d,%d,%d", history[0].ID, history[1].ID, history[2].ID)
	}
}
