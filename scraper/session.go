package scraper

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// Option is one suggestion or date cell read from the page.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Session is the browser capability the navigator drives. Implementations
// must be safe to Close on every exit path; a Session is never shared
// between scrape calls.
type Session interface {
	Navigate(ctx context.Context, url string) error
	WaitVisible(ctx context.Context, selector string) error
	Fill(ctx context.Context, selector, value string) error
	Click(ctx context.Context, selector string) error
	PressEnter(ctx context.Context, selector string) error
	Options(ctx context.Context, selector string) ([]Option, error)
	HTML(ctx context.Context, selector string) (string, error)
	Close() error
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// chromeSession drives one headless Chrome tab per scrape.
type chromeSession struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

// NewChromeSession launches a fresh browser. The caller owns the session and
// must Close it to release the OS process.
func NewChromeSession(headless bool) (Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
		chromedp.Flag("mute-audio", true),
		chromedp.UserAgent(defaultUserAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	return &chromeSession{ctx: ctx, cancel: cancel, allocCancel: allocCancel}, nil
}

// run executes actions on the session tab, honoring the caller's deadline.
func (s *chromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx := s.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(s.ctx, deadline)
		defer cancel()
	}
	return chromedp.Run(runCtx, actions...)
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, chromedp.Navigate(url))
}

func (s *chromeSession) WaitVisible(ctx context.Context, selector string) error {
	return s.run(ctx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (s *chromeSession) Fill(ctx context.Context, selector, value string) error {
	return s.run(ctx,
		chromedp.SetValue(selector, "", chromedp.ByQuery),
		chromedp.SendKeys(selector, value, chromedp.ByQuery),
	)
}

func (s *chromeSession) Click(ctx context.Context, selector string) error {
	return s.run(ctx, chromedp.Click(selector, chromedp.ByQuery))
}

func (s *chromeSession) PressEnter(ctx context.Context, selector string) error {
	return s.run(ctx, chromedp.SendKeys(selector, kb.Enter, chromedp.ByQuery))
}

func (s *chromeSession) Options(ctx context.Context, selector string) ([]Option, error) {
	expr := fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map(el => ({id: el.id || "", text: el.innerText || ""}))`,
		selector,
	)
	var opts []Option
	if err := s.run(ctx, chromedp.Evaluate(expr, &opts)); err != nil {
		return nil, err
	}
	return opts, nil
}

func (s *chromeSession) HTML(ctx context.Context, selector string) (string, error) {
	var out string
	if err := s.run(ctx, chromedp.OuterHTML(selector, &out, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return out, nil
}

func (s *chromeSession) Close() error {
	s.cancel()
	s.allocCancel()
	return nil
}
