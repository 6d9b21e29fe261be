package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Alast0rRL/testtaxi/internal/service"
)

func TestSupportForward(t *testing.T) {
	t.Parallel()

	sender := NewMockMessageSender()
	svc := service.NewSupportService(sender, 9000)

	err := svc.Forward(context.Background(), 100, "Иван", "Водитель не приехал")
	if err != nil {
		t.Fatalf("forward failed: %v", err)
	}

	msgs := sender.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].ChatID != 9000 {
		t.Errorf("expected message to support chat 9000, got %d", msgs[0].ChatID)
	}
	for _, want := range []string{"Иван", "ID: 100", "Водитель не приехал"} {
		if !strings.Contains(msgs[0].Text, want) {
			t.Errorf("support message missing %q:\n%s", want, msgs[0].Text)
		}
	}
}

func TestSupportForward_SenderFailure(t *testing.T) {
	t.Parallel()

	sender := NewMockMessageSender()
	sender.SendError = errors.New("http 503")
	svc := service.NewSupportService(sender, 9000)

	err := svc.Forward(context.Background(), 100, "Иван", "Вопрос")
	if !errors.Is(err, service.ErrSupportForwardFailed) {
		t.Errorf("expected ErrSupportForwardFailed, got %v", err)
	}
}

func TestSupportForward_NotConfigured(t *testing.T) {
	t.Parallel()

	svc := service.NewSupportService(NewMockMessageSender(), 0)

	err := svc.Forward(context.Background(), 100, "Иван", "Вопрос")
	if !errors.Is(err, service.ErrSupportNotConfigured) {
		t.Errorf("expected ErrSupportNotConfigured, got %v", err)
	}
}

func TestSupportForward_EmptyMessage(t *testing.T) {
	t.Parallel()

	svc := service.NewSupportService(NewMockMessageSender(), 9000)

	err := svc.Forward(context.Background(), 100, "Иван", "   ")
	if !errors.Is(err, service.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}
