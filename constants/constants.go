package constants

// Transport modes the API accepts. Only train has a scraper wired in.
const (
	MODE_TRAIN  = "train"
	MODE_BUS    = "bus"
	MODE_FLIGHT = "flight"
)

// Booking lifecycle statuses.
const (
	BOOKING_CONFIRMED = "confirmed"
	BOOKING_WAITLIST  = "waitlist"
	BOOKING_CANCELLED = "cancelled"
)

// Where an availability response came from.
const (
	SOURCE_DATABASE = "database"
	SOURCE_SCRAPE   = "scrape"
)

// Response statuses.
const (
	STATUS_SUCCESS = "success"
	STATUS_ERROR   = "error"
)

// API messages.
const (
	ERROR_INPUT                = "Invalid input"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"

	SCHEDULE_NOT_FOUND        = "Schedule not found"
	BOOKING_NOT_FOUND         = "Booking not found"
	BOOKING_CANCEL_OK         = "Booking cancelled successfully"
	BOOKING_ALREADY_CANCELLED = "Booking already cancelled"
	SEAT_CLASS_REQUIRED       = "seat_preferences.seat_class is required"
	RESULTS_TIMEOUT           = "Train results did not load within timeout"
	DATE_NOT_AVAILABLE        = "Requested travel date not available on the search page"
	BUS_NOT_IMPLEMENTED       = "Bus scraping not implemented yet"
	FLIGHT_NOT_IMPLEMENTED    = "Flight scraping not implemented yet"
	QRCODE_GENERATION_FAILED  = "Could not generate QR code"
	LIVE_CHANNEL_UNAVAILABLE  = "Live updates unavailable"
)

// Message formats.
const (
	FOUND_SCHEDULES_DB    = "Found %d schedules from database"
	SCRAPED_TRAINS        = "Successfully scraped %d trains"
	NO_SEAT_CLASS         = "No seat availability data for class '%s'"
	NOT_BOOKABLE          = "Seat class '%s' is not bookable right now (%s)"
	UNSUPPORTED_MODE      = "Unsupported transport mode: %s"
	BOOKING_CREATED       = "Booking %s for %s (%s) from %s to %s in %s"
	BOOKING_CANCELLED_FOR = "Booking cancelled for %s (%s) from %s to %s"
	SCRAPING_ERROR        = "Scraping error: %s"
	STATION_FILL_FAILED   = "Failed to fill %s station"
)
