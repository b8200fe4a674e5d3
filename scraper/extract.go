package scraper

import (
	"errors"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Selectors for the rendered results page. These mirror the railway site's
// MUI markup and are the single place to touch when the site restyles.
const (
	trainBlockSel      = ".MuiPaper-root.MuiPaper-elevation1.css-we1py8"
	alternativeSel     = ".css-1o5dav7"
	departureSel       = ".css-i9gxme p"
	arrivalSel         = ".css-13tuif5 p"
	durationSpanSel    = ".css-0 > span"
	journeySel         = ".css-1305zog:nth-child(2)"
	seatBlockSel       = "[id^='availabilityContainer_'] > div.MuiPaper-root"
	seatClassSel       = ".bookingclasstitle"
	seatStatusSel      = ".availibilityandseatcounttitle"
	seatPriceSel       = ".bookingclassprice"
	refreshPlaceholder = "taptorefresh"
)

// RawSeat is one seat-class block exactly as rendered.
type RawSeat struct {
	ClassText  string
	StatusText string
	PriceText  string
}

// RawTrain is one train row's text fragments before any parsing.
type RawTrain struct {
	NameText      string
	DepartureText string
	ArrivalText   string
	DurationText  string
	JourneyText   string
	Seats         []RawSeat
}

// ExtractTrains walks the rendered results HTML and returns one RawTrain per
// main train row, in page order. Alternative-route suggestions are excluded.
// A malformed row is logged and skipped without aborting the rest.
func ExtractTrains(pageHTML string) ([]RawTrain, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, err
	}

	var trains []RawTrain
	doc.Find(trainBlockSel).Each(func(i int, block *goquery.Selection) {
		if block.ParentsFiltered(alternativeSel).Length() > 0 {
			return
		}
		train, err := extractTrain(block)
		if err != nil {
			log.Printf("[SCRAPER] skipping train block %d: %v", i, err)
			return
		}
		trains = append(trains, train)
	})
	return trains, nil
}

func extractTrain(block *goquery.Selection) (RawTrain, error) {
	var train RawTrain

	name := block.Find("a").First()
	if name.Length() == 0 {
		return train, errors.New("no train name anchor")
	}
	train.NameText = innerText(name)

	dep := block.Find(departureSel).First()
	if dep.Length() == 0 {
		return train, errors.New("no departure block")
	}
	train.DepartureText = innerText(dep)

	arr := block.Find(arrivalSel).First()
	if arr.Length() == 0 {
		return train, errors.New("no arrival block")
	}
	train.ArrivalText = innerText(arr)

	spans := block.Find(durationSpanSel)
	if spans.Length() >= 2 {
		train.DurationText = innerText(spans.Eq(0)) + " " + innerText(spans.Eq(1))
	} else if spans.Length() == 1 {
		train.DurationText = innerText(spans.Eq(0))
	}

	train.JourneyText = innerText(block.Find(journeySel).First())

	block.Find(seatBlockSel).Each(func(_ int, seat *goquery.Selection) {
		inner, _ := seat.Html()
		if strings.Contains(strings.ToLower(inner), refreshPlaceholder) {
			return
		}

		priceText := "N/A"
		if price := seat.Find(seatPriceSel).First(); price.Length() > 0 {
			priceText = innerText(price)
		}

		train.Seats = append(train.Seats, RawSeat{
			ClassText:  innerText(seat.Find(seatClassSel).First()),
			StatusText: innerText(seat.Find(seatStatusSel).First()),
			PriceText:  priceText,
		})
	})

	return train, nil
}

var blockLevelTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"tr": true, "table": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// innerText renders a selection the way a browser reports element text:
// <br> and block-element boundaries become line breaks, runs of whitespace
// collapse, and blank lines drop out. goquery's Text() concatenates text
// nodes with no separators, which would glue station codes to clock times.
func innerText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "br" {
				b.WriteString("\n")
				return
			}
			if blockLevelTags[n.Data] {
				b.WriteString("\n")
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			if blockLevelTags[n.Data] {
				b.WriteString("\n")
			}
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}

	lines := strings.Split(b.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
