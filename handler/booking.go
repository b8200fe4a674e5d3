package handler

import (
	"errors"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/helper"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
	"github.com/gofiber/fiber/v2"
)

func BookTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.BookingRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	resp, err := helper.CreateBooking(input)
	if err != nil {
		if errors.Is(err, model.ErrScheduleNotFound) || errors.Is(err, model.ErrSeatClassNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, resp.Message, err)
		}
		if errors.Is(err, model.ErrNotBookable) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, resp.Message, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), err)
	}

	return c.JSON(resp)
}

func CancelTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CancellationRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	resp, err := helper.CancelBooking(input.BookingID)
	if err != nil {
		if errors.Is(err, model.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, resp.Message, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), err)
	}

	return c.JSON(resp)
}

func GetUserBookings(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	summaries, total, err := helper.GetUserBookings(userID, pagination)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), err)
	}

	response := &model.ResponseCustom{
		Rows:       summaries,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetBookingById(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingId").(string)

	detail, err := helper.GetBookingDetail(bookingID)
	if err != nil {
		if errors.Is(err, model.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), err)
	}

	return c.JSON(detail)
}

// GetBookingQRCode renders the booking reference as a PNG, same content the
// confirmation email attaches.
func GetBookingQRCode(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingId").(string)

	detail, err := helper.GetBookingDetail(bookingID)
	if err != nil {
		if errors.Is(err, model.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), err)
	}

	qrBytes, err := utils.GenerateQRCode(detail.BookingID, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.QRCODE_GENERATION_FAILED, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}
