package models

import "time"

// BackupVersion is the schema version stamped on export bundles. Imports
// reject any bundle carrying a different version.
const BackupVersion = 1

type Backup struct {
	Doctors      []Doctor      `json:"doctors"`
	Patients     []Patient     `json:"patients"`
	Appointments []Appointment `json:"appointments"`
	ExportedAt   time.Time     `json:"exportedAt"`
	Version      int           `json:"version"`
}
