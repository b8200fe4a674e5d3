package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
)

const searchURL = "https://www.railyatri.in/booking/trains-between-stations"

const (
	fromStationID    = "fromstation"
	toStationID      = "tostation"
	suggestionSel    = "[role='option']"
	dateStripSel     = "[id^='date_strip_']"
	searchButtonSel  = "button[aria-label='Modify Search']"
	resultsPaperSel  = ".MuiPaper-root"
	settleAfterType  = 1500 * time.Millisecond
	settleAfterDate  = 1 * time.Second
	settleAfterClick = 2500 * time.Millisecond
)

// NavState tracks where the navigator is in its walk across the search page.
type NavState int

const (
	StateIdle NavState = iota
	StateLoaded
	StateSubmitted
	StateRendered
	StateClosed
	StateFailed
)

func (s NavState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoaded:
		return "loaded"
	case StateSubmitted:
		return "submitted"
	case StateRendered:
		return "rendered"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// trainNavigator walks the trains-between-stations page:
// idle -> loaded -> submitted -> rendered, or failed. Extraction only
// happens from rendered.
type trainNavigator struct {
	session Session
	timeout time.Duration
	retries int
	state   NavState
	sleep   func(time.Duration)
}

func newTrainNavigator(session Session, timeout time.Duration, retries int) *trainNavigator {
	return &trainNavigator{
		session: session,
		timeout: timeout,
		retries: retries,
		state:   StateIdle,
		sleep:   time.Sleep,
	}
}

func (n *trainNavigator) State() NavState { return n.state }

// Run drives the whole walk and returns the rendered results HTML.
func (n *trainNavigator) Run(ctx context.Context, origin, destination string, date time.Time) (string, error) {
	if err := n.load(ctx); err != nil {
		n.state = StateFailed
		return "", err
	}

	if err := n.fillStation(ctx, fromStationID, origin); err != nil {
		n.state = StateFailed
		return "", scrapeErr(fmt.Sprintf(constants.STATION_FILL_FAILED, "FROM"), err)
	}
	if err := n.fillStation(ctx, toStationID, destination); err != nil {
		n.state = StateFailed
		return "", scrapeErr(fmt.Sprintf(constants.STATION_FILL_FAILED, "TO"), err)
	}
	if err := n.selectDate(ctx, date); err != nil {
		n.state = StateFailed
		return "", err
	}

	if err := n.submitAndWait(ctx); err != nil {
		n.state = StateFailed
		return "", err
	}

	html, err := n.session.HTML(ctx, "html")
	if err != nil {
		n.state = StateFailed
		return "", scrapeErr(fmt.Sprintf(constants.SCRAPING_ERROR, err), err)
	}
	return html, nil
}

// Close releases the browser session. Safe to call from any state.
func (n *trainNavigator) Close() {
	if n.state != StateClosed {
		if err := n.session.Close(); err != nil {
			log.Printf("[SCRAPER] session close: %v", err)
		}
		n.state = StateClosed
	}
}

func (n *trainNavigator) load(ctx context.Context) error {
	if err := n.session.Navigate(ctx, searchURL); err != nil {
		return scrapeErr(fmt.Sprintf(constants.SCRAPING_ERROR, err), err)
	}
	waitCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	if err := n.session.WaitVisible(waitCtx, "#"+fromStationID); err != nil {
		return scrapeErr(constants.RESULTS_TIMEOUT, model.ErrResultsTimeout)
	}
	n.state = StateLoaded
	return nil
}

// fillStation types the query into a station field and picks the first
// suggestion containing it, case-insensitively. No matching suggestion is a
// hard error rather than a silent default to whatever the site guesses.
func (n *trainNavigator) fillStation(ctx context.Context, fieldID, query string) error {
	if err := n.session.Fill(ctx, "#"+fieldID, query); err != nil {
		return err
	}
	n.sleep(settleAfterType)

	opts, err := n.session.Options(ctx, suggestionSel)
	if err != nil {
		return err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	for i, opt := range opts {
		if !strings.Contains(strings.ToLower(opt.Text), needle) {
			continue
		}
		sel := "#" + opt.ID
		if opt.ID == "" {
			sel = fmt.Sprintf("%s:nth-of-type(%d)", suggestionSel, i+1)
		}
		return n.session.Click(ctx, sel)
	}
	return fmt.Errorf("no suggestion matched %q: %w", query, model.ErrStationNotFound)
}

// selectDate clicks the date-strip cell whose id carries the day+month
// token, e.g. date_strip_16Aug.
func (n *trainNavigator) selectDate(ctx context.Context, date time.Time) error {
	token := utils.FormatDayMonth(date)
	cells, err := n.session.Options(ctx, dateStripSel)
	if err != nil {
		return err
	}
	for _, cell := range cells {
		if strings.Contains(cell.ID, token) {
			if err := n.session.Click(ctx, "#"+cell.ID); err != nil {
				return err
			}
			n.sleep(settleAfterDate)
			return nil
		}
	}
	return scrapeErr(constants.DATE_NOT_AVAILABLE, model.ErrDateNotAvailable)
}

// submitAndWait clicks search and polls for the results container, retrying
// the submit a bounded number of times before giving up.
func (n *trainNavigator) submitAndWait(ctx context.Context) error {
	n.submit(ctx)

	for attempt := 0; ; attempt++ {
		waitCtx, cancel := context.WithTimeout(ctx, n.timeout)
		err := n.session.WaitVisible(waitCtx, resultsPaperSel)
		cancel()
		if err == nil {
			n.state = StateRendered
			return nil
		}
		if attempt >= n.retries {
			return scrapeErr(constants.RESULTS_TIMEOUT, model.ErrResultsTimeout)
		}
		log.Printf("[SCRAPER] results not rendered, resubmitting (attempt %d of %d)", attempt+1, n.retries)
		n.submit(ctx)
	}
}

func (n *trainNavigator) submit(ctx context.Context) {
	if err := n.session.Click(ctx, searchButtonSel); err != nil {
		// The search button is sometimes replaced by a plain form; ENTER on
		// body triggers the same search.
		if err := n.session.PressEnter(ctx, "body"); err != nil {
			log.Printf("[SCRAPER] submit fallback failed: %v", err)
		}
	}
	n.state = StateSubmitted
	n.sleep(settleAfterClick)
}
