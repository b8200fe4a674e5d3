package helper

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/database"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBooking derives the booking outcome from the requested seat class's
// current status text and persists the record. A regret status rejects the
// request without writing anything. On failure the response message and the
// sentinel error both describe the reason.
func CreateBooking(req model.BookingRequest) (model.BookingResponse, error) {
	resp := model.BookingResponse{Status: constants.STATUS_ERROR}
	db := database.DB

	var schedule model.Schedule
	if err := db.Preload("SeatAvailability").First(&schedule, req.ScheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Message = constants.SCHEDULE_NOT_FOUND
			return resp, model.ErrScheduleNotFound
		}
		resp.Message = err.Error()
		return resp, err
	}

	seatClass := req.SeatPreferences.SeatClass
	seat, ok := findSeatClass(schedule.SeatAvailability, seatClass)
	if !ok {
		resp.Message = fmt.Sprintf(constants.NO_SEAT_CLASS, seatClass)
		return resp, model.ErrSeatClassNotFound
	}

	outcome := ClassifyStatus(seat.Status)
	if outcome == OutcomeRegret {
		resp.Message = fmt.Sprintf(constants.NOT_BOOKABLE, seatClass, strings.ReplaceAll(seat.Status, "\n", " "))
		return resp, model.ErrNotBookable
	}

	booking := model.Booking{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		ScheduleID:      schedule.ID,
		BookingStatus:   outcome,
		BookingDate:     time.Now(),
		SeatPreferences: req.SeatPreferences,
	}
	if err := db.Create(&booking).Error; err != nil {
		resp.Message = err.Error()
		return resp, err
	}

	resp.BookingID = booking.ID
	resp.Status = constants.STATUS_SUCCESS
	resp.BookingStatus = outcome
	resp.Message = fmt.Sprintf(constants.BOOKING_CREATED,
		outcome, schedule.TransportName, schedule.TransportID, schedule.Origin, schedule.Destination, seatClass)

	if req.Email != "" {
		sendConfirmation(req.Email, booking, schedule, seatClass)
	}
	return resp, nil
}

// CancelBooking soft-deletes: the record keeps its row with booking_status
// set to cancelled. Cancelling an already cancelled booking is a success
// with no further mutation.
func CancelBooking(bookingID string) (model.CancellationResponse, error) {
	resp := model.CancellationResponse{Status: constants.STATUS_ERROR}
	db := database.DB

	var booking model.Booking
	if err := db.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Message = constants.BOOKING_NOT_FOUND
			return resp, model.ErrBookingNotFound
		}
		resp.Message = err.Error()
		return resp, err
	}

	if booking.BookingStatus == constants.BOOKING_CANCELLED {
		resp.Status = constants.STATUS_SUCCESS
		resp.Message = constants.BOOKING_ALREADY_CANCELLED
		return resp, nil
	}

	var schedule model.Schedule
	scheduleKnown := db.First(&schedule, booking.ScheduleID).Error == nil

	if err := db.Model(&booking).Update("booking_status", constants.BOOKING_CANCELLED).Error; err != nil {
		resp.Message = err.Error()
		return resp, err
	}

	resp.Status = constants.STATUS_SUCCESS
	resp.Message = constants.BOOKING_CANCEL_OK
	if scheduleKnown {
		resp.Message = fmt.Sprintf(constants.BOOKING_CANCELLED_FOR,
			schedule.TransportName, schedule.TransportID, schedule.Origin, schedule.Destination)
	}
	return resp, nil
}

// GetUserBookings returns the user's whole history, cancelled bookings
// included, newest first.
func GetUserBookings(userID string, p model.Pagination) ([]model.BookingSummary, int64, error) {
	condition := database.DB.Model(&model.Booking{}).Where("user_id = ?", userID)

	var totalCount int64
	condition.Count(&totalCount)

	var bookings []model.Booking
	query := condition.Order("booking_date DESC")
	query = utils.ApplyPagination(query, p.Limit, p.Page)
	if err := query.Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	summaries := make([]model.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		summaries = append(summaries, bookingSummary(b))
	}
	return summaries, totalCount, nil
}

// GetBookingDetail pairs the booking with its schedule as stored right now,
// current seat rows included, so availability drift since booking time shows
// up. Times render as RFC3339 here, not bare clocks.
func GetBookingDetail(bookingID string) (model.BookingDetail, error) {
	var detail model.BookingDetail
	db := database.DB

	var booking model.Booking
	if err := db.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail, model.ErrBookingNotFound
		}
		return detail, err
	}
	detail.BookingSummary = bookingSummary(booking)

	var schedule model.Schedule
	if err := db.Preload("SeatAvailability").First(&schedule, booking.ScheduleID).Error; err == nil {
		resp := buildScheduleResponse(schedule, time.RFC3339)
		detail.Schedule = &resp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return detail, err
	}
	return detail, nil
}

func bookingSummary(b model.Booking) model.BookingSummary {
	return model.BookingSummary{
		BookingID:       b.ID,
		UserID:          b.UserID,
		ScheduleID:      b.ScheduleID,
		BookingStatus:   b.BookingStatus,
		BookingDate:     b.BookingDate,
		SeatPreferences: b.SeatPreferences,
	}
}

func findSeatClass(seats []model.SeatAvailability, seatClass string) (model.SeatAvailability, bool) {
	for _, seat := range seats {
		if strings.EqualFold(seat.ClassName, seatClass) {
			return seat, true
		}
	}
	return model.SeatAvailability{}, false
}

func sendConfirmation(email string, booking model.Booking, schedule model.Schedule, seatClass string) {
	qr, err := utils.GenerateQRCode(booking.ID, 256)
	if err != nil {
		log.Printf("[BOOKING] qr for %s: %v", booking.ID, err)
		qr = nil
	}
	utils.SendBookingConfirmationEmail(email, utils.BookingConfirmationData{
		BookingID:     booking.ID,
		TransportName: schedule.TransportName,
		TransportID:   schedule.TransportID,
		Origin:        schedule.Origin,
		Destination:   schedule.Destination,
		TravelDate:    schedule.TravelDate.String(),
		Departure:     schedule.DepartureTime.Format("15:04"),
		SeatClass:     seatClass,
		BookingStatus: booking.BookingStatus,
	}, qr)
}
