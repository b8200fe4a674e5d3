package scraper

import (
	"testing"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRawTrain() RawTrain {
	return RawTrain{
		NameText:      "22207 Super Fast Express",
		DepartureText: "PGT, 07:25\nPalakkad Jn",
		ArrivalText:   "14:15, TVC\nThiruvananthapuram Central",
		DurationText:  "06 h 50 m",
		JourneyText:   "4 halts | 357 kms",
		Seats: []RawSeat{
			{ClassText: "SL (Sleeper)", StatusText: "3 Waitlist\nHigh Chance", PriceText: "₹320"},
			{ClassText: "3A (AC 3 Tier)", StatusText: "Available", PriceText: "₹1,234"},
		},
	}
}

func TestNormalizeTrainRow(t *testing.T) {
	resp, ok := Normalize(sampleRawTrain(), 1)
	require.True(t, ok)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, constants.MODE_TRAIN, resp.TransportMode)
	assert.Equal(t, "22207", resp.TransportID)
	assert.Equal(t, "Super Fast Express", resp.TransportName)
	assert.Equal(t, "Palakkad Jn", resp.Origin)
	assert.Equal(t, "PGT", resp.OriginCode)
	assert.Equal(t, "07:25", resp.DepartureTime)
	assert.Equal(t, "Thiruvananthapuram Central", resp.Destination)
	assert.Equal(t, "TVC", resp.DestinationCode)
	assert.Equal(t, "14:15", resp.ArrivalTime)
	assert.Equal(t, "06h 50m", resp.Duration)
	assert.Equal(t, "357 km", resp.Distance)
	assert.Equal(t, 4, resp.Halts)

	require.Len(t, resp.SeatAvailability, 2)
	sl := resp.SeatAvailability[0]
	assert.Equal(t, "SL", sl.ClassName)
	assert.Equal(t, "Sleeper", sl.ClassDescription)
	assert.Equal(t, "3 Waitlist\nHigh Chance", sl.Status, "status stays verbatim")
	assert.Equal(t, 320.0, sl.Price)
	assert.Equal(t, 1234.0, resp.SeatAvailability[1].Price)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := sampleRawTrain()

	first, ok := Normalize(raw, 1)
	require.True(t, ok)
	second, ok := Normalize(raw, 1)
	require.True(t, ok)
	assert.Equal(t, first, second)

	// A different surrogate id is the only permitted difference.
	third, ok := Normalize(raw, 9)
	require.True(t, ok)
	assert.Equal(t, uint(9), third.ID)
	third.ID = first.ID
	assert.Equal(t, first, third)
}

func TestNormalizeUppercasesStationCodes(t *testing.T) {
	raw := sampleRawTrain()
	raw.DepartureText = "pgt, 7:25\nPalakkad Jn"
	raw.ArrivalText = "14:15, tvc\nThiruvananthapuram Central"

	resp, ok := Normalize(raw, 1)
	require.True(t, ok)
	assert.Equal(t, "PGT", resp.OriginCode)
	assert.Equal(t, "TVC", resp.DestinationCode)
	assert.Equal(t, "07:25", resp.DepartureTime)
}

func TestNormalizeQuotedTrainName(t *testing.T) {
	raw := sampleRawTrain()
	raw.NameText = `16650 "Parasuram Express"`

	resp, ok := Normalize(raw, 1)
	require.True(t, ok)
	assert.Equal(t, "16650", resp.TransportID)
	assert.Equal(t, "Parasuram Express", resp.TransportName)
}

func TestNormalizeSeatClassWithoutDescription(t *testing.T) {
	raw := sampleRawTrain()
	raw.Seats = []RawSeat{{ClassText: "SL", StatusText: "Available", PriceText: "₹320"}}

	resp, ok := Normalize(raw, 1)
	require.True(t, ok)
	require.Len(t, resp.SeatAvailability, 1)
	assert.Equal(t, "SL", resp.SeatAvailability[0].ClassName)
	assert.Empty(t, resp.SeatAvailability[0].ClassDescription)
}

func TestNormalizeZeroSeatRow(t *testing.T) {
	raw := sampleRawTrain()
	raw.Seats = nil

	resp, ok := Normalize(raw, 1)
	require.True(t, ok)
	assert.NotNil(t, resp.SeatAvailability)
	assert.Empty(t, resp.SeatAvailability)
}

func TestNormalizeTrainsSkipsMalformedRows(t *testing.T) {
	good := sampleRawTrain()
	bad := sampleRawTrain()
	bad.DepartureText = "departs soon"

	schedules := NormalizeTrains([]RawTrain{good, bad, good})
	require.Len(t, schedules, 2)
	assert.Equal(t, uint(1), schedules[0].ID)
	assert.Equal(t, uint(2), schedules[1].ID)
	assert.Equal(t, "22207", schedules[1].TransportID)
}
