package scraper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession is a scripted Session for navigator tests. Options calls for
// the suggestion list pop one entry from suggestions per call (from-station
// first, to-station second).
type fakeSession struct {
	pageHTML    string
	suggestions [][]Option
	dateCells   []Option
	renderFails int
	formErr     error

	navigated []string
	fills     map[string]string
	clicks    []string
	enters    []string
	closes    int
}

func (f *fakeSession) closed() bool { return f.closes > 0 }

func newFakeSession() *fakeSession {
	return &fakeSession{
		pageHTML: "<html><body></body></html>",
		suggestions: [][]Option{
			{{ID: "opt_pgt", Text: "Palakkad Jn (PGT)"}},
			{{ID: "opt_tvc", Text: "Thiruvananthapuram Central (TVC)"}},
		},
		dateCells: []Option{
			{ID: "date_strip_15Aug", Text: "15 Aug"},
			{ID: "date_strip_16Aug", Text: "16 Aug"},
		},
		fills: map[string]string{},
	}
}

func (f *fakeSession) Navigate(ctx context.Context, url string) error {
	f.navigated = append(f.navigated, url)
	return nil
}

func (f *fakeSession) WaitVisible(ctx context.Context, selector string) error {
	switch selector {
	case "#" + fromStationID:
		return f.formErr
	case resultsPaperSel:
		if f.renderFails > 0 {
			f.renderFails--
			return errors.New("results container not visible")
		}
	}
	return nil
}

func (f *fakeSession) Fill(ctx context.Context, selector, value string) error {
	f.fills[selector] = value
	return nil
}

func (f *fakeSession) Click(ctx context.Context, selector string) error {
	f.clicks = append(f.clicks, selector)
	return nil
}

func (f *fakeSession) PressEnter(ctx context.Context, selector string) error {
	f.enters = append(f.enters, selector)
	return nil
}

func (f *fakeSession) Options(ctx context.Context, selector string) ([]Option, error) {
	switch selector {
	case suggestionSel:
		if len(f.suggestions) == 0 {
			return nil, nil
		}
		opts := f.suggestions[0]
		f.suggestions = f.suggestions[1:]
		return opts, nil
	case dateStripSel:
		return f.dateCells, nil
	}
	return nil, nil
}

func (f *fakeSession) HTML(ctx context.Context, selector string) (string, error) {
	return f.pageHTML, nil
}

func (f *fakeSession) Close() error {
	f.closes++
	return nil
}

func newTestNavigator(s Session, retries int) *trainNavigator {
	nav := newTrainNavigator(s, 50*time.Millisecond, retries)
	nav.sleep = func(time.Duration) {}
	return nav
}

var testDate = time.Date(2025, time.August, 16, 0, 0, 0, 0, time.UTC)

func TestNavigatorHappyPath(t *testing.T) {
	fake := newFakeSession()
	fake.pageHTML = "<html><body>rendered</body></html>"
	nav := newTestNavigator(fake, 1)

	html, err := nav.Run(context.Background(), "palakkad", "thiruvananthapuram", testDate)
	require.NoError(t, err)
	assert.Equal(t, fake.pageHTML, html)
	assert.Equal(t, StateRendered, nav.State())

	assert.Equal(t, []string{searchURL}, fake.navigated)
	assert.Equal(t, "palakkad", fake.fills["#"+fromStationID])
	assert.Equal(t, "thiruvananthapuram", fake.fills["#"+toStationID])
	assert.Contains(t, fake.clicks, "#opt_pgt")
	assert.Contains(t, fake.clicks, "#opt_tvc")
	assert.Contains(t, fake.clicks, "#date_strip_16Aug")
	assert.Contains(t, fake.clicks, searchButtonSel)

	nav.Close()
	assert.True(t, fake.closed())
	assert.Equal(t, StateClosed, nav.State())
}

func TestNavigatorFirstSuggestionWins(t *testing.T) {
	fake := newFakeSession()
	fake.suggestions = [][]Option{
		{
			{ID: "opt_pgtn", Text: "Palakkad Town (PGTN)"},
			{ID: "opt_pgt", Text: "Palakkad Jn (PGT)"},
		},
		{{ID: "opt_tvc", Text: "Thiruvananthapuram Central (TVC)"}},
	}
	nav := newTestNavigator(fake, 1)

	_, err := nav.Run(context.Background(), "palakkad", "thiruvananthapuram", testDate)
	require.NoError(t, err)
	assert.Contains(t, fake.clicks, "#opt_pgtn")
	assert.NotContains(t, fake.clicks, "#opt_pgt")
}

func TestNavigatorStationNotFound(t *testing.T) {
	fake := newFakeSession()
	fake.suggestions = [][]Option{
		{{ID: "opt_mas", Text: "Chennai Central (MAS)"}},
	}
	nav := newTestNavigator(fake, 1)

	_, err := nav.Run(context.Background(), "palakkad", "thiruvananthapuram", testDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrStationNotFound)
	assert.Equal(t, StateFailed, nav.State())
}

func TestNavigatorDateNotAvailable(t *testing.T) {
	fake := newFakeSession()
	fake.dateCells = []Option{{ID: "date_strip_15Aug", Text: "15 Aug"}}
	nav := newTestNavigator(fake, 1)

	_, err := nav.Run(context.Background(), "palakkad", "thiruvananthapuram", testDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDateNotAvailable)
	assert.Equal(t, StateFailed, nav.State())
}

func TestNavigatorResubmitsThenFails(t *testing.T) {
	fake := newFakeSession()
	fake.renderFails = 10
	nav := newTestNavigator(fake, 2)

	_, err := nav.Run(context.Background(), "palakkad", "thiruvananthapuram", testDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrResultsTimeout)
	assert.Equal(t, StateFailed, nav.State())

	submits := 0
	for _, sel := range fake.clicks {
		if sel == searchButtonSel {
			submits++
		}
	}
	assert.Equal(t, 3, submits, "initial submit plus two retries")
}

func TestNavigatorRecoversAfterOneRetry(t *testing.T) {
	fake := newFakeSession()
	fake.renderFails = 1
	nav := newTestNavigator(fake, 2)

	_, err := nav.Run(context.Background(), "palakkad", "thiruvananthapuram", testDate)
	require.NoError(t, err)
	assert.Equal(t, StateRendered, nav.State())
}

func TestNavigatorCloseIsIdempotent(t *testing.T) {
	fake := newFakeSession()
	nav := newTestNavigator(fake, 1)

	nav.Close()
	nav.Close()
	assert.Equal(t, 1, fake.closes, "second Close must not touch the session again")
	assert.Equal(t, StateClosed, nav.State())
}
