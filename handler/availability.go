package handler

import (
	"log"

	"github.com/adil-bs/Universal-ticket-mock-APIs/helper"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
	"github.com/gofiber/fiber/v2"
)

// GetTravelAvailability answers a search from the schedule store when it can
// and scrapes the provider live otherwise. The response carries which one
// happened in its source field.
func GetTravelAvailability(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AvailabilityQuery)

	resp, err := helper.GetAvailability(c.Context(), input)
	if err != nil {
		log.Printf("[GATEWAY] availability %s %s -> %s: %v", input.Mode, input.Origin, input.Destination, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), err)
	}

	return c.JSON(resp)
}
