package service

import "errors"

var (
	// ErrInvalidRiderID is returned when the rider id is missing.
	ErrInvalidRiderID = errors.New("invalid rider id")

	// ErrInvalidOrderID is returned when the order id is missing.
	ErrInvalidOrderID = errors.New("invalid order id")

	// ErrInvalidChatID is returned when the driver session identity is missing.
	ErrInvalidChatID = errors.New("invalid chat id")

	// ErrInvalidCity is returned when a city is not in the serviced set.
	ErrInvalidCity = errors.New("invalid city")

	// ErrInvalidTariff is returned when a tariff is not in the available set.
	ErrInvalidTariff = errors.New("invalid tariff")

	// ErrInvalidTripTime is returned when the requested time is out of range.
	ErrInvalidTripTime = errors.New("invalid trip time")

	// ErrInvalidPhone is returned when a phone number cannot be normalized.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidProfile is returned when registration profile fields are missing.
	ErrInvalidProfile = errors.New("full name and vehicle are required")

	// ErrOrderUnavailable is returned to a driver who lost the claim race:
	// the order was already taken by the time their attempt landed.
	ErrOrderUnavailable = errors.New("order no longer available")

	// ErrDriverNotRegistered is returned when a claim arrives from a session
	// with no driver record behind it.
	ErrDriverNotRegistered = errors.New("driver not registered")

	// ErrNotifyFailed wraps a failed push to the rider-side process. It is
	// logged where it happens and never alters the claim outcome.
	ErrNotifyFailed = errors.New("rider notification failed")

	// ErrSupportForwardFailed wraps a failed relay into the support chat.
	ErrSupportForwardFailed = errors.New("support forward failed")

	// ErrSupportNotConfigured is returned when no support chat is configured.
	ErrSupportNotConfigured = errors.New("support chat not configured")

	// ErrEmptyMessage is returned when a support message has no content.
	ErrEmptyMessage = errors.New("message is empty")
)
