package scraper

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/adil-bs/Universal-ticket-mock-APIs/config"
	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
)

// Error pairs the user-facing message of a failed scrape with the sentinel
// cause handlers classify on.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Cause }

func scrapeErr(message string, cause error) error {
	return &Error{Message: message, Cause: cause}
}

// SessionFactory opens a fresh browser session for one scrape call.
type SessionFactory func() (Session, error)

// TransportScraper dispatches availability scrapes by transport mode. Train
// is the only mode with a wired pipeline; bus and flight are explicit stubs
// kept so new modes slot into the same dispatch.
type TransportScraper struct {
	NewSession SessionFactory
	Timeout    time.Duration
	Retries    int
}

func New() *TransportScraper {
	headless := config.Bool("SCRAPE_HEADLESS", true)
	return &TransportScraper{
		NewSession: func() (Session, error) { return NewChromeSession(headless) },
		Timeout:    config.Seconds("SCRAPE_TIMEOUT_SECONDS", 30*time.Second),
		Retries:    config.Int("SCRAPE_SUBMIT_RETRIES", 2),
	}
}

// Scrape runs the pipeline for the query's mode and returns normalized
// schedules in page order. Zero schedules with a nil error is a valid
// outcome distinct from a failed scrape.
func (t *TransportScraper) Scrape(ctx context.Context, query model.AvailabilityQuery) ([]model.ScheduleResponse, error) {
	switch query.Mode {
	case constants.MODE_TRAIN:
		return t.scrapeTrains(ctx, query)
	case constants.MODE_BUS:
		return nil, scrapeErr(constants.BUS_NOT_IMPLEMENTED, model.ErrModeNotSupported)
	case constants.MODE_FLIGHT:
		return nil, scrapeErr(constants.FLIGHT_NOT_IMPLEMENTED, model.ErrModeNotSupported)
	default:
		return nil, scrapeErr(fmt.Sprintf(constants.UNSUPPORTED_MODE, query.Mode), model.ErrModeNotSupported)
	}
}

func (t *TransportScraper) scrapeTrains(ctx context.Context, query model.AvailabilityQuery) ([]model.ScheduleResponse, error) {
	date, err := utils.ParseTravelDate(query.Datetime)
	if err != nil {
		return nil, scrapeErr(fmt.Sprintf("Invalid travel date %q", query.Datetime), err)
	}

	session, err := t.NewSession()
	if err != nil {
		return nil, scrapeErr(fmt.Sprintf(constants.SCRAPING_ERROR, err), err)
	}
	nav := newTrainNavigator(session, t.Timeout, t.Retries)
	defer nav.Close()

	pageHTML, err := nav.Run(ctx, query.Origin, query.Destination, date)
	if err != nil {
		return nil, err
	}

	raws, err := ExtractTrains(pageHTML)
	if err != nil {
		return nil, scrapeErr(fmt.Sprintf(constants.SCRAPING_ERROR, err), err)
	}
	log.Printf("[SCRAPER] extracted %d train rows for %s -> %s on %s",
		len(raws), query.Origin, query.Destination, date.Format("2006-01-02"))

	return NormalizeTrains(raws), nil
}
