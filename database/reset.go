package database

import (
	"log"

	"github.com/adil-bs/Universal-ticket-mock-APIs/config"
	"gorm.io/gorm"
)

// ResetIfRequested wipes all rows when DB_RESET=true. Development use only:
// it destroys booking history along with cached schedules.
func ResetIfRequested(db *gorm.DB) {
	if !config.Bool("DB_RESET", false) {
		return
	}
	ClearAllTables(db)
}

// ClearAllTables deletes every row, children before parents so foreign keys
// never block the wipe.
func ClearAllTables(db *gorm.DB) {
	for _, table := range []string{"bookings", "seat_availability", "transport_schedules"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Printf("[DB] failed to clear %s: %v", table, err)
			continue
		}
		log.Printf("[DB] cleared %s", table)
	}
}
