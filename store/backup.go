package store

import (
	"fmt"
	"time"

	"clinicdesk/models"
)

// SaveAll persists a full snapshot with independent per-record upserts. This
// is not one transaction: the first failing record aborts the walk and
// already-written records stay written.
func (s *Store) SaveAll(b *models.Backup) error {
	for i := range b.Doctors {
		if err := s.save(&b.Doctors[i]); err != nil {
			return fmt.Errorf("save doctor %s: %w", b.Doctors[i].ID, err)
		}
	}
	for i := range b.Patients {
		if err := s.save(&b.Patients[i]); err != nil {
			return fmt.Errorf("save patient %s: %w", b.Patients[i].ID, err)
		}
	}
	for i := range b.Appointments {
		if err := s.save(&b.Appointments[i]); err != nil {
			return fmt.Errorf("save appointment %s: %w", b.Appointments[i].ID, err)
		}
	}
	return nil
}

// Export bundles the three collections with a timestamp and schema version.
func (s *Store) Export() (*models.Backup, error) {
	doctors, err := s.ListDoctors()
	if err != nil {
		return nil, err
	}
	patients, err := s.ListPatients()
	if err != nil {
		return nil, err
	}
	appointments, err := s.ListAppointments()
	if err != nil {
		return nil, err
	}
	return &models.Backup{
		Doctors:      doctors,
		Patients:     patients,
		Appointments: appointments,
		ExportedAt:   time.Now().UTC(),
		Version:      models.BackupVersion,
	}, nil
}

// Import clears all three collections and repopulates them from the bundle.
// A mid-import failure leaves the collections partially restored.
func (s *Store) Import(b *models.Backup) error {
	if b.Version != models.BackupVersion {
		return fmt.Errorf("unsupported backup version %d", b.Version)
	}
	if err := s.ClearAll(); err != nil {
		return err
	}
	return s.SaveAll(b)
}

func (s *Store) ClearAll() error {
	if err := s.ClearDoctors(); err != nil {
		return err
	}
	if err := s.ClearPatients(); err != nil {
		return err
	}
	return s.ClearAppointments()
}
