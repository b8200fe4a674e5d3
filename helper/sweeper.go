package helper

import (
	"log"
	"time"

	"github.com/adil-bs/Universal-ticket-mock-APIs/config"
	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/database"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	retentionScheduler gocron.Scheduler
	waitlistScheduler  *cron.Cron
)

// StartRetentionSweeper purges cached schedules past the retention window
// once a day. Until they age out, persisted schedules are authoritative and
// the gateway never re-scrapes the same query.
func StartRetentionSweeper() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("IST", 5*3600+1800)),
	)
	if err != nil {
		log.Fatal(err)
	}

	retentionScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 15, 0),
			),
		),
		gocron.NewTask(PurgeStaleSchedules),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("[CRON] schedule retention sweeper started (00:15 IST)")
}

func StopRetentionSweeper() {
	if retentionScheduler != nil {
		if err := retentionScheduler.Shutdown(); err != nil {
			log.Printf("[CRON] retention sweeper shutdown: %v", err)
		}
	}
}

// PurgeStaleSchedules deletes schedules whose travel date fell out of the
// retention window, except those a booking still references; booking detail
// lookups keep working for old trips. Seat rows go with their schedule via
// the cascade.
func PurgeStaleSchedules() {
	days := config.Int("SCHEDULE_RETENTION_DAYS", 7)
	cutoff := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	db := database.DB
	referenced := db.Model(&model.Booking{}).Distinct("schedule_id")
	result := db.Where("travel_date < ? AND id NOT IN (?)", cutoff, referenced).Delete(&model.Schedule{})
	if result.Error != nil {
		log.Printf("[CRON] purging stale schedules: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[CRON] purged %d schedules older than %s", result.RowsAffected, cutoff)
	}
}

// StartWaitlistSweeper cancels waitlisted bookings whose train has already
// departed, every ten minutes. Waitlists that never cleared before departure
// are dead inventory on the real railway too.
func StartWaitlistSweeper() {
	waitlistScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := waitlistScheduler.AddFunc("*/10 * * * *", CancelDepartedWaitlists)
	if err != nil {
		log.Printf("[CRON] waitlist sweeper init: %v", err)
		return
	}

	waitlistScheduler.Start()
	log.Println("[CRON] waitlist sweeper started (every 10 minutes)")
}

func StopWaitlistSweeper() {
	if waitlistScheduler != nil {
		waitlistScheduler.Stop()
	}
}

// CancelDepartedWaitlists flips still-waitlisted bookings to cancelled once
// their schedule's departure has passed.
func CancelDepartedWaitlists() {
	db := database.DB
	departed := db.Model(&model.Schedule{}).Select("id").Where("departure_time < ?", time.Now())
	result := db.Model(&model.Booking{}).
		Where("booking_status = ? AND schedule_id IN (?)", constants.BOOKING_WAITLIST, departed).
		Update("booking_status", constants.BOOKING_CANCELLED)

	if result.Error != nil {
		log.Printf("[CRON] cancelling departed waitlists: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[CRON] cancelled %d waitlisted bookings past departure", result.RowsAffected)
	}
}
