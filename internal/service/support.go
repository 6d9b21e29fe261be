package service

import (
	"context"
	"fmt"
	"strings"
)

// SupportService forwards rider support messages to the support chat.
type SupportService struct {
	sender        MessageSender
	supportChatID int64
}

// NewSupportService creates a new SupportService. A zero supportChatID means
// the support channel is not configured.
func NewSupportService(sender MessageSender, supportChatID int64) *SupportService {
	return &SupportService{
		sender:        sender,
		supportChatID: supportChatID,
	}
}

// Forward relays a rider's message to the support chat.
func (s *SupportService) Forward(ctx context.Context, riderID int64, name, message string) error {
	if riderID <= 0 {
		return ErrInvalidRiderID
	}
	if s.supportChatID == 0 {
		return ErrSupportNotConfigured
	}
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}

	text := fmt.Sprintf(
		"Новое обращение в поддержку от пользователя: %s (ID: %d)\n\n---\n%s",
		name, riderID, message,
	)
	if err := s.sender.SendMessage(ctx, s.supportChatID, text); err != nil {
		return fmt.Errorf("%w: rider %d: %v", ErrSupportForwardFailed, riderID, err)
	}
	return nil
}
