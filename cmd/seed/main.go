package main

import (
	"fmt"
	"log"
	"os"

	"societyhub/internal/database"
	"societyhub/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "societyhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM maintenance_fees")
	db.Exec("DELETE FROM booking_modifications")
	db.Exec("DELETE FROM booking_cancellations")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM facility_slots")
	db.Exec("DELETE FROM facilities")
	db.Exec("DELETE FROM password_reset_requests")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM units")

	// ================== UNITS ==================
	log.Println("Creating units...")
	units := []domain.Unit{}
	for i := 1; i <= 4; i++ {
		u := domain.Unit{
			Block:     "A",
			Number:    fmt.Sprintf("A-%d0%d", (i+1)/2, i),
			OwnerName: fmt.Sprintf("Owner %d", i),
		}
		db.Create(&u)
		units = append(units, u)
	}

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@societyhub.in",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAppAdmin,
		Name:         "Society Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@societyhub.in / admin123")

	for i := range units {
		hash, _ := bcrypt.GenerateFromPassword([]byte("resident123"), bcrypt.DefaultCost)
		resident := domain.User{
			Email:        fmt.Sprintf("resident%d@societyhub.in", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleResident,
			Name:         fmt.Sprintf("Resident %d", i+1),
			Phone:        fmt.Sprintf("+91 98765 432%02d", i+10),
			UnitID:       &units[i].ID,
		}
		db.Create(&resident)
	}

	// ================== FACILITIES ==================
	log.Println("Creating facilities...")

	tennis := domain.Facility{
		Name:          "Tennis Court",
		Description:   "Outdoor synthetic court",
		PricingModel:  domain.PricingHourly,
		HourlyRate:    200,
		OpenTime:      "06:00",
		CloseTime:     "22:00",
		Capacity:      4,
		Status:        domain.FacilityAvailable,
		GSTApplicable: false,
	}
	db.Create(&tennis)

	pool := domain.Facility{
		Name:                "Swimming Pool",
		Description:         "Morning and evening sessions",
		PricingModel:        domain.PricingPerSlot,
		ScheduleType:        domain.ScheduleSplit,
		Capacity:            30,
		Status:              domain.FacilityAvailable,
		PerPersonApplicable: true,
		GSTApplicable:       true,
		GSTRate:             18,
		TaxCode:             "SAC9996",
		Slots: []domain.FacilitySlot{
			{Name: "Morning", StartTime: "06:00", EndTime: "09:00", Price: 150},
			{Name: "Evening", StartTime: "17:00", EndTime: "20:00", Price: 150},
		},
	}
	db.Create(&pool)

	hall := domain.Facility{
		Name:          "Community Hall",
		Description:   "Full-day events only",
		PricingModel:  domain.PricingPerDay,
		HourlyRate:    1000,
		Capacity:      200,
		Status:        domain.FacilityAvailable,
		GSTApplicable: true,
		GSTRate:       18,
		TaxCode:       "SAC9963",
	}
	db.Create(&hall)

	log.Println("Seed complete.")
}
