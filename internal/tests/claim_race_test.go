package tests

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/service"
)

// claimFixture wires a dispatch service over mocks with one waiting order
// and n registered drivers (chat ids 1..n).
func claimFixture(n int) (*service.DispatchService, *MockOrderRepository, *MockMessageSender) {
	orderRepo := NewMockOrderRepository()
	driverRepo := NewMockDriverRepository()
	sender := NewMockMessageSender()

	orderRepo.AddOrder(&domain.Order{
		RiderID:  500,
		FromCity: domain.CityUfa,
		ToCity:   domain.CityOktyabrsky,
		Tariff:   domain.TariffStandard,
		Time:     domain.TripTime{Hour: 9, Minute: 0},
		Phone:    "+79170000000",
		Status:   domain.StatusWaiting,
	})

	for i := 1; i <= n; i++ {
		driverRepo.AddDriver(&domain.Driver{
			ChatID:   int64(i),
			Phone:    fmt.Sprintf("+7917%07d", i),
			FullName: fmt.Sprintf("Водитель %d", i),
			Vehicle:  fmt.Sprintf("Lada %d", i),
		})
	}

	notifier := service.NewRiderNotifierService(sender)
	return service.NewDispatchService(orderRepo, driverRepo, notifier), orderRepo, sender
}

func TestClaim_ConcurrentAttempts_ExactlyOneWinner(t *testing.T) {
	t.Parallel()

	const drivers = 64
	dispatch, orderRepo, sender := claimFixture(drivers)

	var (
		winners int32
		losers  int32
		other   int32
		wg      sync.WaitGroup
		start   = make(chan struct{})
	)

	for i := 1; i <= drivers; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			<-start
			_, err := dispatch.Claim(context.Background(), 1, chatID)
			switch {
			case err == nil:
				atomic.AddInt32(&winners, 1)
			case errors.Is(err, service.ErrOrderUnavailable):
				atomic.AddInt32(&losers, 1)
			default:
				atomic.AddInt32(&other, 1)
			}
		}(int64(i))
	}

	close(start)
	wg.Wait()

	if winners != 1 {
		t.Errorf("expected exactly 1 winner, got %d", winners)
	}
	if losers != drivers-1 {
		t.Errorf("expected %d losers, got %d", drivers-1, losers)
	}
	if other != 0 {
		t.Errorf("expected no unexpected errors, got %d", other)
	}

	if got := orderRepo.GetOrder(1).Status; got != domain.StatusClaimed {
		t.Errorf("expected order status %s, got %s", domain.StatusClaimed, got)
	}

	// Every attempt reached the store's arbitration point.
	if count := orderRepo.TransitionCallCount; count != drivers {
		t.Errorf("expected %d transition attempts, got %d", drivers, count)
	}

	// The rider must hear about the acceptance exactly once.
	if msgs := sender.Messages(); len(msgs) != 1 {
		t.Errorf("expected exactly 1 rider notification, got %d", len(msgs))
	}
}

func TestClaim_RetryAfterLoss_StaysLost(t *testing.T) {
	t.Parallel()

	dispatch, _, _ := claimFixture(2)

	if _, err := dispatch.Claim(context.Background(), 1, 1); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	// The loser retrying changes nothing.
	for i := 0; i < 3; i++ {
		_, err := dispatch.Claim(context.Background(), 1, 2)
		if !errors.Is(err, service.ErrOrderUnavailable) {
			t.Fatalf("retry %d: expected ErrOrderUnavailable, got %v", i, err)
		}
	}
}

func TestClaim_WinnerReclaiming_AlsoUnavailable(t *testing.T) {
	t.Parallel()

	dispatch, _, _ := claimFixture(1)

	if _, err := dispatch.Claim(context.Background(), 1, 1); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	// The transition fires exactly once even for the same driver.
	_, err := dispatch.Claim(context.Background(), 1, 1)
	if !errors.Is(err, service.ErrOrderUnavailable) {
		t.Errorf("expected ErrOrderUnavailable, got %v", err)
	}
}

func TestClaim_UnknownOrder(t *testing.T) {
	t.Parallel()

	dispatch, _, _ := claimFixture(1)

	_, err := dispatch.Claim(context.Background(), 999, 1)
	if err == nil {
		t.Fatal("expected an error for unknown order")
	}
}

func TestClaim_UnregisteredDriver(t *testing.T) {
	t.Parallel()

	dispatch, _, _ := claimFixture(1)

	_, err := dispatch.Claim(context.Background(), 1, 777)
	if !errors.Is(err, service.ErrDriverNotRegistered) {
		t.Errorf("expected ErrDriverNotRegistered, got %v", err)
	}
}
