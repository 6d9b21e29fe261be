package domain

import (
	"fmt"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// StatusWaiting is the sole creation state: the order is visible to
	// drivers and can be claimed.
	StatusWaiting OrderStatus = "WAITING"
	// StatusClaimed is terminal: exactly one driver won the claim.
	StatusClaimed OrderStatus = "CLAIMED"
)

// City is one of the fixed set of cities the service operates between.
type City string

const (
	CityOktyabrsky City = "Октябрьский"
	CityTuymazy    City = "Туймазы"
	CityUfa        City = "Уфа"
)

// Cities lists every serviced city, in menu order.
var Cities = []City{CityOktyabrsky, CityTuymazy, CityUfa}

// IsValidCity reports whether name is a serviced city.
func IsValidCity(name string) bool {
	for _, c := range Cities {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Tariff is one of the fixed set of service tariffs.
type Tariff string

const (
	TariffStandard Tariff = "Стандарт"
	TariffComfort  Tariff = "Комфорт"
	TariffBusiness Tariff = "Бизнес"
)

// Tariffs lists every available tariff, in menu order.
var Tariffs = []Tariff{TariffStandard, TariffComfort, TariffBusiness}

// IsValidTariff reports whether name is an available tariff.
func IsValidTariff(name string) bool {
	for _, t := range Tariffs {
		if string(t) == name {
			return true
		}
	}
	return false
}

// TripTime is a time-of-day value with no date component. The requested time
// is caller-supplied and deliberately not validated for being in the future.
type TripTime struct {
	Hour   int
	Minute int
}

// NewTripTime builds a TripTime, rejecting out-of-range components.
func NewTripTime(hour, minute int) (TripTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TripTime{}, fmt.Errorf("trip time %02d:%02d out of range", hour, minute)
	}
	return TripTime{Hour: hour, Minute: minute}, nil
}

// ParseTripTime parses the stored "HH:MM" representation.
func ParseTripTime(s string) (TripTime, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return TripTime{}, fmt.Errorf("trip time %q: %w", s, err)
	}
	return NewTripTime(hour, minute)
}

// String formats the time as "HH:MM", the on-disk and user-facing form.
func (t TripTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Order represents an intercity taxi order.
type Order struct {
	ID        int64
	RiderID   int64
	FromCity  City
	ToCity    City
	Tariff    Tariff
	Time      TripTime
	Phone     string
	Status    OrderStatus
	CreatedAt time.Time
}

// Summary renders the order the way it is shown in chat messages.
func (o *Order) Summary() string {
	return fmt.Sprintf("Заказ №%d: %s → %s, тариф %s, время %s",
		o.ID, o.FromCity, o.ToCity, o.Tariff, o.Time)
}
