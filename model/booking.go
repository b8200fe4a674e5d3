package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SeatPreferences is the rider's requested placement. Only SeatClass takes
// part in booking decisions; everything else is carried through untouched,
// including arbitrary extra attributes the client sends.
type SeatPreferences struct {
	SeatClass    string         `json:"seat_class"`
	SeatPosition string         `json:"seat_position,omitempty"`
	Coach        string         `json:"coach,omitempty"`
	SeatNumber   string         `json:"seat_number,omitempty"`
	Extra        map[string]any `json:"-"`
}

func (p *SeatPreferences) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	take := func(key string, dst *string) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		delete(raw, key)
		return json.Unmarshal(v, dst)
	}

	if err := take("seat_class", &p.SeatClass); err != nil {
		return err
	}
	if err := take("seat_position", &p.SeatPosition); err != nil {
		return err
	}
	if err := take("coach", &p.Coach); err != nil {
		return err
	}
	if err := take("seat_number", &p.SeatNumber); err != nil {
		return err
	}

	if len(raw) > 0 {
		p.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return err
			}
			p.Extra[k] = val
		}
	}
	return nil
}

func (p SeatPreferences) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+4)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["seat_class"] = p.SeatClass
	if p.SeatPosition != "" {
		out["seat_position"] = p.SeatPosition
	}
	if p.Coach != "" {
		out["coach"] = p.Coach
	}
	if p.SeatNumber != "" {
		out["seat_number"] = p.SeatNumber
	}
	return json.Marshal(out)
}

// === DB: JSONB round-trip ===
func (p SeatPreferences) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *SeatPreferences) Scan(value interface{}) error {
	if value == nil {
		*p = SeatPreferences{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported scan type for SeatPreferences: %T", value)
	}
}

// Booking is a reservation record against one schedule and seat class.
// Cancellation is a soft delete: the row stays with booking_status set to
// cancelled so history queries keep returning it.
type Booking struct {
	ID              string          `gorm:"primaryKey;size:36" json:"booking_id"`
	UserID          string          `gorm:"size:100;index" json:"user_id"`
	ScheduleID      uint            `gorm:"index" json:"schedule_id"`
	BookingStatus   string          `gorm:"size:20" json:"booking_status"`
	BookingDate     time.Time       `json:"booking_date"`
	SeatPreferences SeatPreferences `gorm:"type:jsonb" json:"seat_preferences"`
}

func (Booking) TableName() string { return "bookings" }

type BookingRequest struct {
	UserID          string          `json:"user_id" validate:"required"`
	ScheduleID      uint            `json:"schedule_id" validate:"required,gt=0"`
	SeatPreferences SeatPreferences `json:"seat_preferences"`
	Email           string          `json:"email" validate:"omitempty,email"`
}

type CancellationRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type BookingResponse struct {
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	BookingStatus string `json:"booking_status,omitempty"`
}

type CancellationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BookingSummary is the lightweight history row.
type BookingSummary struct {
	BookingID       string          `json:"booking_id"`
	UserID          string          `json:"user_id"`
	ScheduleID      uint            `json:"schedule_id"`
	BookingStatus   string          `json:"booking_status"`
	BookingDate     time.Time       `json:"booking_date"`
	SeatPreferences SeatPreferences `json:"seat_preferences"`
}

// BookingDetail pairs a booking with its schedule as stored right now, so
// seat-availability drift since booking time is visible.
type BookingDetail struct {
	BookingSummary
	Schedule *ScheduleResponse `json:"schedule"`
}
