package scraper

import (
	"context"
	"testing"
	"time"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainQuery() model.AvailabilityQuery {
	return model.AvailabilityQuery{
		Mode:        constants.MODE_TRAIN,
		Origin:      "palakkad",
		Destination: "thiruvananthapuram",
		Datetime:    "2025-08-16",
	}
}

func TestScrapeDispatchRejectsUnwiredModes(t *testing.T) {
	ts := &TransportScraper{}

	for _, mode := range []string{constants.MODE_BUS, constants.MODE_FLIGHT, "hyperloop"} {
		query := trainQuery()
		query.Mode = mode
		_, err := ts.Scrape(context.Background(), query)
		require.Error(t, err, "mode %s", mode)
		assert.ErrorIs(t, err, model.ErrModeNotSupported, "mode %s", mode)
	}
}

func TestScrapeRejectsBadDateBeforeOpeningSession(t *testing.T) {
	sessions := 0
	ts := &TransportScraper{
		NewSession: func() (Session, error) {
			sessions++
			return newFakeSession(), nil
		},
		Timeout: 50 * time.Millisecond,
		Retries: 1,
	}

	query := trainQuery()
	query.Datetime = "16-08-2025"
	_, err := ts.Scrape(context.Background(), query)
	require.Error(t, err)
	assert.Zero(t, sessions, "no browser should be launched for an unparseable date")
}

func TestScrapeClosesSessionOnFailure(t *testing.T) {
	fake := newFakeSession()
	fake.formErr = context.DeadlineExceeded
	ts := &TransportScraper{
		NewSession: func() (Session, error) { return fake, nil },
		Timeout:    50 * time.Millisecond,
		Retries:    1,
	}

	_, err := ts.Scrape(context.Background(), trainQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrResultsTimeout)
	assert.True(t, fake.closed(), "session must be released on the failure path")
}

// TestScrapedPageToSchedules walks the whole pipeline below the session:
// navigator render, row extraction, and normalization.
func TestScrapedPageToSchedules(t *testing.T) {
	fake := newFakeSession()
	fake.pageHTML = resultsPageHTML
	nav := newTestNavigator(fake, 1)
	defer nav.Close()

	pageHTML, err := nav.Run(context.Background(), "palakkad", "thiruvananthapuram", testDate)
	require.NoError(t, err)

	raws, err := ExtractTrains(pageHTML)
	require.NoError(t, err)
	schedules := NormalizeTrains(raws)

	require.Len(t, schedules, 2)
	first := schedules[0]
	assert.Equal(t, "22207", first.TransportID)
	assert.Equal(t, "PGT", first.OriginCode)
	assert.Equal(t, "TVC", first.DestinationCode)
	assert.Equal(t, "06h 50m", first.Duration)
	assert.Equal(t, "357 km", first.Distance)
	require.Len(t, first.SeatAvailability, 3)
	assert.Equal(t, "3 Waitlist\nHigh Chance", first.SeatAvailability[0].Status)

	assert.Equal(t, "16650", schedules[1].TransportID)
	assert.Empty(t, schedules[1].SeatAvailability)
}
