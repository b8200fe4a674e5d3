package scraper

import (
	"log"
	"strings"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
)

// NormalizeTrains composes field parsers over raw rows, preserving page
// order and assigning transient sequence ids. Persisting replaces the ids
// with store-issued ones. Normalization is pure: the same raw input always
// yields the same output.
func NormalizeTrains(raws []RawTrain) []model.ScheduleResponse {
	schedules := make([]model.ScheduleResponse, 0, len(raws))
	for _, raw := range raws {
		resp, ok := Normalize(raw, uint(len(schedules)+1))
		if !ok {
			continue
		}
		schedules = append(schedules, resp)
	}
	return schedules
}

// Normalize maps one raw row to a ScheduleResponse. Rows whose departure or
// arrival text does not carry both a time line and a station line are
// dropped with a warning.
func Normalize(raw RawTrain, seq uint) (model.ScheduleResponse, bool) {
	resp := model.ScheduleResponse{
		ID:               seq,
		TransportMode:    constants.MODE_TRAIN,
		SeatAvailability: []model.SeatResponse{},
	}

	name := strings.TrimSpace(raw.NameText)
	if parts := strings.SplitN(name, " ", 2); len(parts) == 2 {
		resp.TransportID = parts[0]
		resp.TransportName = strings.Trim(strings.TrimSpace(parts[1]), `"`)
	} else {
		resp.TransportName = name
	}

	depLines := strings.Split(raw.DepartureText, "\n")
	if len(depLines) < 2 {
		log.Printf("[SCRAPER] malformed departure text %q", raw.DepartureText)
		return resp, false
	}
	if code, clock, ok := splitCodeClock(depLines[0]); ok {
		resp.OriginCode = strings.ToUpper(code)
		resp.DepartureTime = ParseClock(clock)
	}
	resp.Origin = strings.TrimSpace(depLines[1])

	arrLines := strings.Split(raw.ArrivalText, "\n")
	if len(arrLines) < 2 {
		log.Printf("[SCRAPER] malformed arrival text %q", raw.ArrivalText)
		return resp, false
	}
	if clock, code, ok := splitCodeClock(arrLines[0]); ok {
		resp.ArrivalTime = ParseClock(clock)
		resp.DestinationCode = strings.ToUpper(code)
	}
	resp.Destination = strings.TrimSpace(arrLines[1])

	resp.Duration = ParseDuration(raw.DurationText)

	if left, right, ok := strings.Cut(raw.JourneyText, "|"); ok {
		resp.Halts = ParseHalts(left)
		resp.Distance = ParseDistance(right)
	}

	for _, seat := range raw.Seats {
		resp.SeatAvailability = append(resp.SeatAvailability, normalizeSeat(seat, uint(len(resp.SeatAvailability)+1)))
	}
	return resp, true
}

// splitCodeClock splits the "PGT, 07:25" style line the site renders on both
// ends of a journey. The departure side puts the code first, the arrival
// side puts the clock first; callers assign accordingly.
func splitCodeClock(line string) (string, string, bool) {
	first, second, ok := strings.Cut(line, ",")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(first), strings.TrimSpace(second), true
}

func normalizeSeat(raw RawSeat, seq uint) model.SeatResponse {
	seat := model.SeatResponse{
		ID:     seq,
		Status: raw.StatusText,
		Price:  ParsePrice(raw.PriceText),
	}

	classText := strings.TrimSpace(raw.ClassText)
	if name, desc, ok := strings.Cut(classText, "("); ok {
		seat.ClassName = strings.TrimSpace(name)
		seat.ClassDescription = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(desc), ")"))
	} else {
		seat.ClassName = classText
	}
	return seat
}
