package helper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/database"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/adil-bs/Universal-ticket-mock-APIs/scraper"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// Scraper is the scrape dispatch the gateway falls back to on a store miss.
type Scraper interface {
	Scrape(ctx context.Context, query model.AvailabilityQuery) ([]model.ScheduleResponse, error)
}

// TravelScraper is swapped out by tests; production uses the chromedp-backed
// dispatch.
var TravelScraper Scraper = scraper.New()

// GetAvailability is the database-first gateway: matching persisted
// schedules win, otherwise the scraping pipeline runs and its rows are
// persisted transactionally before the response is built.
func GetAvailability(ctx context.Context, query model.AvailabilityQuery) (model.AvailabilityResponse, error) {
	resp := model.AvailabilityResponse{
		Input:     query,
		Schedules: []model.ScheduleResponse{},
		Status:    constants.STATUS_SUCCESS,
	}

	travelDate, err := utils.ParseTravelDate(query.Datetime)
	if err != nil {
		return resp, fmt.Errorf("invalid datetime %q, expected YYYY-MM-DD", query.Datetime)
	}

	stored, err := searchStore(query, travelDate)
	if err != nil {
		return resp, err
	}
	if len(stored) > 0 {
		for _, s := range stored {
			resp.Schedules = append(resp.Schedules, buildScheduleResponse(s, "15:04"))
		}
		resp.Schedules = filterSeatClass(resp.Schedules, query.SeatClass)
		resp.Source = constants.SOURCE_DATABASE
		resp.Message = fmt.Sprintf(constants.FOUND_SCHEDULES_DB, len(stored))
		return resp, nil
	}

	scraped, err := TravelScraper.Scrape(ctx, query)
	if err != nil {
		return resp, err
	}

	resp.Source = constants.SOURCE_SCRAPE
	resp.Message = fmt.Sprintf(constants.SCRAPED_TRAINS, len(scraped))

	if len(scraped) > 0 {
		if err := persistSchedules(scraped, query, travelDate); err != nil {
			return resp, fmt.Errorf("persisting scraped schedules: %w", err)
		}
		// Live watchers of this route get the full scrape, not the
		// seat-class-filtered view this caller asked for.
		full := resp
		full.Schedules = scraped
		PublishAvailability(full)
	}

	resp.Schedules = filterSeatClass(scraped, query.SeatClass)
	if resp.Schedules == nil {
		resp.Schedules = []model.ScheduleResponse{}
	}
	return resp, nil
}

// StoredAvailability reports what the store already holds for a search,
// never scraping. The live stream sends it as the first frame.
func StoredAvailability(query model.AvailabilityQuery) (model.AvailabilityResponse, error) {
	resp := model.AvailabilityResponse{
		Input:     query,
		Schedules: []model.ScheduleResponse{},
		Status:    constants.STATUS_SUCCESS,
		Source:    constants.SOURCE_DATABASE,
	}

	travelDate, err := utils.ParseTravelDate(query.Datetime)
	if err != nil {
		return resp, fmt.Errorf("invalid datetime %q, expected YYYY-MM-DD", query.Datetime)
	}

	stored, err := searchStore(query, travelDate)
	if err != nil {
		return resp, err
	}
	for _, s := range stored {
		resp.Schedules = append(resp.Schedules, buildScheduleResponse(s, "15:04"))
	}
	resp.Message = fmt.Sprintf(constants.FOUND_SCHEDULES_DB, len(stored))
	return resp, nil
}

// searchStore matches persisted schedules for the query's travel date. The
// origin and destination patterns match either the station name the site
// rendered or the raw query string a previous caller searched with.
func searchStore(query model.AvailabilityQuery, travelDate time.Time) ([]model.Schedule, error) {
	db := database.DB

	var schedules []model.Schedule
	originPat := "%" + query.Origin + "%"
	destPat := "%" + query.Destination + "%"
	err := db.Preload("SeatAvailability").
		Where("transport_mode = ?", query.Mode).
		Where("(origin_query ILIKE ? OR origin ILIKE ?)", originPat, originPat).
		Where("(destination_query ILIKE ? OR destination ILIKE ?)", destPat, destPat).
		Where("travel_date = ?", utils.NewCustomDate(travelDate)).
		Order("id").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// persistSchedules writes one scrape's rows in a single transaction,
// upserting by (mode, transport_id, travel_date) so a re-scrape updates the
// existing row instead of duplicating it, and bookings keep their schedule
// ids. Seat rows are replaced wholesale. Store-issued ids are written back
// into the responses.
func persistSchedules(scraped []model.ScheduleResponse, query model.AvailabilityQuery, travelDate time.Time) error {
	tx := database.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	for i := range scraped {
		s := &scraped[i]
		entity := scheduleEntity(s, query, travelDate)

		var existing model.Schedule
		err := tx.Where("transport_mode = ? AND transport_id = ? AND travel_date = ?",
			entity.TransportMode, entity.TransportID, entity.TravelDate).
			First(&existing).Error
		switch {
		case err == nil:
			entity.ID = existing.ID
			entity.CreatedAt = existing.CreatedAt
			if err := tx.Save(&entity).Error; err != nil {
				tx.Rollback()
				return err
			}
			if err := tx.Where("schedule_id = ?", entity.ID).Delete(&model.SeatAvailability{}).Error; err != nil {
				tx.Rollback()
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&entity).Error; err != nil {
				tx.Rollback()
				return err
			}
		default:
			tx.Rollback()
			return err
		}

		seats := make([]model.SeatAvailability, 0, len(s.SeatAvailability))
		for _, seat := range s.SeatAvailability {
			seats = append(seats, model.SeatAvailability{
				ScheduleID:       entity.ID,
				ClassName:        seat.ClassName,
				ClassDescription: seat.ClassDescription,
				Status:           seat.Status,
				Price:            seat.Price,
			})
		}
		if len(seats) > 0 {
			if err := tx.Create(&seats).Error; err != nil {
				tx.Rollback()
				return err
			}
		}

		s.ID = entity.ID
		for j := range s.SeatAvailability {
			s.SeatAvailability[j].ID = seats[j].ID
		}
	}

	return tx.Commit().Error
}

// scheduleEntity maps a normalized response onto the persisted shape,
// putting the scraped wall clocks onto the travel date. An arrival at or
// before the departure rolls over to the next day.
func scheduleEntity(s *model.ScheduleResponse, query model.AvailabilityQuery, travelDate time.Time) model.Schedule {
	departure, err := utils.CombineClockDate(s.DepartureTime, travelDate)
	if err != nil {
		log.Printf("[GATEWAY] departure %q not a clock, defaulting to midnight", s.DepartureTime)
		departure = travelDate
	}
	arrival, err := utils.CombineClockDate(s.ArrivalTime, travelDate)
	if err != nil {
		log.Printf("[GATEWAY] arrival %q not a clock, defaulting to midnight", s.ArrivalTime)
		arrival = travelDate
	}
	if !arrival.After(departure) {
		arrival = arrival.Add(24 * time.Hour)
	}

	return model.Schedule{
		TransportMode:    s.TransportMode,
		TransportID:      s.TransportID,
		TravelDate:       utils.NewCustomDate(travelDate),
		TransportName:    s.TransportName,
		Origin:           s.Origin,
		Destination:      s.Destination,
		DepartureTime:    departure,
		ArrivalTime:      arrival,
		Duration:         s.Duration,
		Distance:         s.Distance,
		Halts:            s.Halts,
		OriginCode:       s.OriginCode,
		DestinationCode:  s.DestinationCode,
		OriginQuery:      query.Origin,
		DestinationQuery: query.Destination,
	}
}

// buildScheduleResponse projects a stored schedule, rendering its times with
// the given layout: "15:04" for availability listings, time.RFC3339 for
// booking detail.
func buildScheduleResponse(s model.Schedule, timeLayout string) model.ScheduleResponse {
	var resp model.ScheduleResponse
	if err := copier.Copy(&resp, &s); err != nil {
		log.Printf("[GATEWAY] schedule projection: %v", err)
	}
	resp.DepartureTime = s.DepartureTime.Format(timeLayout)
	resp.ArrivalTime = s.ArrivalTime.Format(timeLayout)
	if resp.SeatAvailability == nil {
		resp.SeatAvailability = []model.SeatResponse{}
	}
	return resp
}

// filterSeatClass narrows every schedule's seat list to the requested class
// when one is given, without touching the input. Schedules stay in the list
// even when nothing matches, so callers still see the run exists.
func filterSeatClass(schedules []model.ScheduleResponse, seatClass string) []model.ScheduleResponse {
	if seatClass == "" {
		return schedules
	}
	out := make([]model.ScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		kept := make([]model.SeatResponse, 0, 1)
		for _, seat := range schedule.SeatAvailability {
			if strings.EqualFold(seat.ClassName, seatClass) {
				kept = append(kept, seat)
			}
		}
		out[i] = schedule
		out[i].SeatAvailability = kept
	}
	return out
}
