package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultsPageHTML mirrors the markup of a rendered trains-between-stations
// results page: two regular trains, one block without a name anchor, and one
// alternative-route suggestion that must be excluded.
const resultsPageHTML = `<!DOCTYPE html>
<html>
<body>
  <div class="MuiPaper-root MuiPaper-elevation1 css-we1py8">
    <a href="/trains/22207">22207 Super Fast Express</a>
    <div class="css-i9gxme">
      <p>PGT, 07:25<br/>Palakkad Jn</p>
    </div>
    <div class="css-13tuif5">
      <p>14:15, TVC<br/>Thiruvananthapuram Central</p>
    </div>
    <div class="css-0"><span>06 h</span><span>50 m</span></div>
    <div class="css-q1wgpv">
      <div class="css-1305zog">Runs Daily</div>
      <div class="css-1305zog">4 halts | 357 kms</div>
    </div>
    <div id="availabilityContainer_22207">
      <div class="MuiPaper-root">
        <div class="bookingclasstitle">SL (Sleeper)</div>
        <div class="availibilityandseatcounttitle">3 Waitlist<br/>High Chance</div>
        <div class="bookingclassprice">₹320</div>
      </div>
      <div class="MuiPaper-root">
        <div class="bookingclasstitle">3A (AC 3 Tier)</div>
        <div class="availibilityandseatcounttitle">Available</div>
        <div class="bookingclassprice">₹1,234</div>
      </div>
      <div class="MuiPaper-root">
        <div class="taptorefresh">Tap to refresh</div>
      </div>
      <div class="MuiPaper-root">
        <div class="bookingclasstitle">2A (AC 2 Tier)</div>
        <div class="availibilityandseatcounttitle">Regret</div>
      </div>
    </div>
  </div>

  <div class="MuiPaper-root MuiPaper-elevation1 css-we1py8">
    <div class="css-i9gxme"><p>PGT, 11:40<br/>Palakkad Jn</p></div>
    <div class="css-13tuif5"><p>19:45, TVC<br/>Thiruvananthapuram Central</p></div>
  </div>

  <div class="MuiPaper-root MuiPaper-elevation1 css-we1py8">
    <a href="/trains/16650">16650 Parasuram Express</a>
    <div class="css-i9gxme"><p>PGT, 05:05<br/>Palakkad Jn</p></div>
    <div class="css-13tuif5"><p>12:55, TVC<br/>Thiruvananthapuram Central</p></div>
    <div class="css-0"><span>07 h</span><span>50 m</span></div>
    <div class="css-q1wgpv">
      <div class="css-1305zog">Runs Daily</div>
      <div class="css-1305zog">11 halts | 385 kms</div>
    </div>
  </div>

  <div class="css-1o5dav7">
    <div class="MuiPaper-root MuiPaper-elevation1 css-we1py8">
      <a href="/trains/12626">12626 Kerala Express</a>
      <div class="css-i9gxme"><p>CBE, 03:10<br/>Coimbatore Jn</p></div>
      <div class="css-13tuif5"><p>11:30, TVC<br/>Thiruvananthapuram Central</p></div>
    </div>
  </div>
</body>
</html>`

func TestExtractTrainsOrderAndFiltering(t *testing.T) {
	trains, err := ExtractTrains(resultsPageHTML)
	require.NoError(t, err)

	// The anchor-less block is skipped, the alternative-route block is
	// excluded, and the two real trains keep page order.
	require.Len(t, trains, 2)
	assert.Equal(t, "22207 Super Fast Express", trains[0].NameText)
	assert.Equal(t, "16650 Parasuram Express", trains[1].NameText)
}

func TestExtractTrainsRowFields(t *testing.T) {
	trains, err := ExtractTrains(resultsPageHTML)
	require.NoError(t, err)
	require.NotEmpty(t, trains)

	first := trains[0]
	assert.Equal(t, "PGT, 07:25\nPalakkad Jn", first.DepartureText)
	assert.Equal(t, "14:15, TVC\nThiruvananthapuram Central", first.ArrivalText)
	assert.Equal(t, "06 h 50 m", first.DurationText)
	assert.Equal(t, "4 halts | 357 kms", first.JourneyText)
}

func TestExtractTrainsSeatBlocks(t *testing.T) {
	trains, err := ExtractTrains(resultsPageHTML)
	require.NoError(t, err)
	require.NotEmpty(t, trains)

	seats := trains[0].Seats
	require.Len(t, seats, 3, "tap-to-refresh placeholder must be dropped")

	assert.Equal(t, "SL (Sleeper)", seats[0].ClassText)
	assert.Equal(t, "3 Waitlist\nHigh Chance", seats[0].StatusText,
		"status text keeps its embedded line break")
	assert.Equal(t, "₹320", seats[0].PriceText)

	assert.Equal(t, "3A (AC 3 Tier)", seats[1].ClassText)
	assert.Equal(t, "Available", seats[1].StatusText)
	assert.Equal(t, "₹1,234", seats[1].PriceText)

	assert.Equal(t, "2A (AC 2 Tier)", seats[2].ClassText)
	assert.Equal(t, "N/A", seats[2].PriceText, "missing price renders as N/A")
}

func TestExtractTrainsKeepsZeroSeatRows(t *testing.T) {
	trains, err := ExtractTrains(resultsPageHTML)
	require.NoError(t, err)
	require.Len(t, trains, 2)

	assert.Empty(t, trains[1].Seats)
	assert.Equal(t, "11 halts | 385 kms", trains[1].JourneyText)
}

func TestExtractTrainsEmptyPage(t *testing.T) {
	trains, err := ExtractTrains("<html><body><p>No trains found</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, trains)
}
