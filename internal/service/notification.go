package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Alast0rRL/testtaxi/internal/domain"
)

// MessageSender pushes a plain-text message into a chat. Satisfied by
// *telegram.Client; tests substitute a fake.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Notification is the claim-accepted event delivered to the rider side.
type Notification struct {
	ID         string
	OrderID    int64
	RiderID    int64
	DriverName string
	Vehicle    string
	Summary    string
	CreatedAt  time.Time
}

// RiderNotifierService pushes claim outcomes into the rider bot's messaging
// endpoint. The sender is constructed with the rider-side process's own
// credential (its bot token), injected at startup rather than looked up
// per call.
type RiderNotifierService struct {
	sender MessageSender
}

// NewRiderNotifierService creates a new RiderNotifierService.
func NewRiderNotifierService(sender MessageSender) *RiderNotifierService {
	return &RiderNotifierService{sender: sender}
}

// Ensure the dispatch contract is satisfied.
var _ RiderNotifier = (*RiderNotifierService)(nil)

// NotifyOrderAccepted sends the acceptance message to the rider who placed
// the order. One outbound call, no retry; failures wrap ErrNotifyFailed and
// leave the already-committed claim untouched.
func (s *RiderNotifierService) NotifyOrderAccepted(ctx context.Context, order *domain.Order, driver *domain.Driver) error {
	n := Notification{
		ID:         uuid.New().String(),
		OrderID:    order.ID,
		RiderID:    order.RiderID,
		DriverName: driver.FullName,
		Vehicle:    driver.Vehicle,
		Summary:    order.Summary(),
		CreatedAt:  time.Now(),
	}

	text := fmt.Sprintf(
		"Ваш заказ принят!\n\n%s\nВодитель: %s\nМашина: %s",
		n.Summary, n.DriverName, n.Vehicle,
	)

	if err := s.sender.SendMessage(ctx, n.RiderID, text); err != nil {
		return fmt.Errorf("%w: notification %s for order %d: %v", ErrNotifyFailed, n.ID, n.OrderID, err)
	}

	log.Printf("[NOTIFICATION] id=%s order=%d rider=%d driver=%s", n.ID, n.OrderID, n.RiderID, n.DriverName)
	return nil
}
