package db

import (
	"fmt"
	"log"

	"clinicdesk/models"
)

// Migrate creates the three record collections and their secondary indexes
// (doctor specialty, patient phone unique, appointment date/doctor/patient)
// on first run. Safe to call on every startup.
func Migrate() {
	err := DB.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
