package validate

import (
	"errors"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func BookingById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingID := c.Params(key)
		if bookingID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("bookingId", bookingID)

		// Continue to next handler
		return c.Next()
	}
}
