package model

import (
	"time"

	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
)

// Schedule is one transport run on one travel date together with its scraped
// seat-class breakdown. A re-scrape of the same (mode, transport_id,
// travel_date) updates the row in place so existing bookings keep a stable
// schedule id.
type Schedule struct {
	DTO
	TransportMode    string           `gorm:"size:50;uniqueIndex:idx_schedule_run" json:"transport_mode"`
	TransportID      string           `gorm:"size:20;uniqueIndex:idx_schedule_run" json:"transport_id"`
	TravelDate       utils.CustomDate `gorm:"type:date;uniqueIndex:idx_schedule_run" json:"travel_date"`
	TransportName    string           `gorm:"size:200" json:"transport_name"`
	Origin           string           `gorm:"size:100" json:"origin"`
	Destination      string           `gorm:"size:100" json:"destination"`
	DepartureTime    time.Time        `json:"departure_time"`
	ArrivalTime      time.Time        `json:"arrival_time"`
	Duration         string           `gorm:"size:20" json:"duration"`
	Distance         string           `gorm:"size:20" json:"distance"`
	Halts            int              `json:"halts"`
	OriginCode       string           `gorm:"size:10" json:"origin_code"`
	DestinationCode  string           `gorm:"size:10" json:"destination_code"`
	OriginQuery      string           `gorm:"size:100" json:"origin_query"`
	DestinationQuery string           `gorm:"size:100" json:"destination_query"`

	SeatAvailability []SeatAvailability `gorm:"foreignKey:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"seat_availability"`
}

func (Schedule) TableName() string { return "transport_schedules" }

// SeatAvailability is one seat class row under a schedule. Status keeps the
// scraped text verbatim, embedded line breaks included, because booking
// outcome classification matches against it.
type SeatAvailability struct {
	DTO
	ScheduleID       uint    `gorm:"index" json:"schedule_id"`
	ClassName        string  `gorm:"size:100" json:"class_name"`
	ClassDescription string  `gorm:"size:200" json:"class_description"`
	Status           string  `gorm:"size:100" json:"status"`
	Price            float64 `json:"price"`
}

func (SeatAvailability) TableName() string { return "seat_availability" }

type AvailabilityQuery struct {
	Mode        string `json:"mode" validate:"required,oneof=train bus flight"`
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Datetime    string `json:"datetime" validate:"required"`
	SeatClass   string `json:"seat_class,omitempty" validate:"omitempty"`
}

type SeatResponse struct {
	ID               uint    `json:"id"`
	ClassName        string  `json:"class_name"`
	ClassDescription string  `json:"class_description"`
	Status           string  `json:"status"`
	Price            float64 `json:"price"`
}

// ScheduleResponse carries times as strings: "HH:MM" in availability
// responses, RFC3339 in booking detail responses.
type ScheduleResponse struct {
	ID               uint           `json:"id"`
	TransportMode    string         `json:"transport_mode"`
	TransportID      string         `json:"transport_id"`
	TransportName    string         `json:"transport_name"`
	Origin           string         `json:"origin"`
	DepartureTime    string         `json:"departure_time"`
	Destination      string         `json:"destination"`
	ArrivalTime      string         `json:"arrival_time"`
	Duration         string         `json:"duration"`
	Distance         string         `json:"distance"`
	Halts            int            `json:"halts"`
	OriginCode       string         `json:"origin_code"`
	DestinationCode  string         `json:"destination_code"`
	SeatAvailability []SeatResponse `json:"seat_availability"`
}

type AvailabilityResponse struct {
	Input     AvailabilityQuery  `json:"input"`
	Schedules []ScheduleResponse `json:"schedules"`
	Status    string             `json:"status"`
	Message   string             `json:"message"`
	Source    string             `json:"source"`
}
