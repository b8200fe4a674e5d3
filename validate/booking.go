package validate

import (
	"strings"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
	"github.com/gofiber/fiber/v2"
)

func BookTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookingRequest
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		// The preference bag is free-form, but a booking has to name a class.
		if strings.TrimSpace(input.SeatPreferences.SeatClass) == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SEAT_CLASS_REQUIRED, nil)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CancelTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CancellationRequest
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
