package database

import (
	"log"
	"strings"

	"societyhub/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the pure-Go "sqlite" driver used in local mode
	_ "modernc.org/sqlite"
)

// Connect picks the backend once, from the DSN scheme: a postgres URL
// means the hosted deployment, anything else is treated as a local
// embedded sqlite file. Business code never branches on the backend.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local mode:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Unit{},
		&domain.User{},
		&domain.PasswordResetRequest{},
		&domain.Facility{},
		&domain.FacilitySlot{},
		&domain.Booking{},
		&domain.BookingCancellation{},
		&domain.BookingModification{},
		&domain.MaintenanceFee{},
	)
}
