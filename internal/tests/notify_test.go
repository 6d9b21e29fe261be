package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/service"
)

func TestClaim_NotifyFailure_KeepsOrderClaimed(t *testing.T) {
	t.Parallel()

	dispatch, orderRepo, sender := claimFixture(1)
	sender.SendError = errors.New("connection refused")

	result, err := dispatch.Claim(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("claim must succeed despite notify failure, got %v", err)
	}
	if result.NotifySent {
		t.Error("expected NotifySent=false after failed push")
	}

	// The claim is irrevocable: the failed push never rolls it back.
	if got := orderRepo.GetOrder(1).Status; got != domain.StatusClaimed {
		t.Errorf("expected order status %s, got %s", domain.StatusClaimed, got)
	}
}

func TestClaim_NotifySuccess_MessageGoesToRider(t *testing.T) {
	t.Parallel()

	dispatch, _, sender := claimFixture(1)

	result, err := dispatch.Claim(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if !result.NotifySent {
		t.Error("expected NotifySent=true")
	}

	msgs := sender.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].ChatID != 500 {
		t.Errorf("expected message to rider chat 500, got %d", msgs[0].ChatID)
	}
	for _, want := range []string{"Ваш заказ принят!", "Водитель: Водитель 1", "Машина: Lada 1"} {
		if !strings.Contains(msgs[0].Text, want) {
			t.Errorf("notification text missing %q:\n%s", want, msgs[0].Text)
		}
	}
}

func TestNotifier_WrapsFailure(t *testing.T) {
	t.Parallel()

	sender := NewMockMessageSender()
	sender.SendError = errors.New("http 502")
	notifier := service.NewRiderNotifierService(sender)

	order := &domain.Order{
		ID:       7,
		RiderID:  42,
		FromCity: domain.CityTuymazy,
		ToCity:   domain.CityUfa,
		Tariff:   domain.TariffComfort,
		Time:     domain.TripTime{Hour: 12, Minute: 15},
		Status:   domain.StatusClaimed,
	}
	driver := &domain.Driver{ChatID: 1, FullName: "Иван", Vehicle: "Kia Rio"}

	err := notifier.NotifyOrderAccepted(context.Background(), order, driver)
	if !errors.Is(err, service.ErrNotifyFailed) {
		t.Errorf("expected ErrNotifyFailed, got %v", err)
	}
}
