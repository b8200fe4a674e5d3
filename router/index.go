package router

import (
	"github.com/adil-bs/Universal-ticket-mock-APIs/handler"
	"github.com/adil-bs/Universal-ticket-mock-APIs/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/", handler.Root)
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api", logger.New())
	api.Get("/transport-modes", handler.GetTransportModes)

	travel := api.Group("/travel")
	travel.Post("/availability", validate.TravelAvailability(), handler.GetTravelAvailability)
	travel.Get("/live/:mode/:origin/:destination/:date", websocket.New(handler.AvailabilityWebsocket))

	api.Post("/book", validate.BookTicket(), handler.BookTicket)
	api.Post("/cancel", validate.CancelTicket(), handler.CancelTicket)

	api.Get("/bookings/:userId", handler.GetUserBookings)

	booking := api.Group("/booking")
	booking.Get("/:bookingId", validate.BookingById("bookingId"), handler.GetBookingById)
	booking.Get("/:bookingId/qrcode", validate.BookingById("bookingId"), handler.GetBookingQRCode)
}
