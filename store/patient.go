package store

import (
	"errors"

	"gorm.io/gorm"

	"clinicdesk/models"
)

func (s *Store) AddPatient(p *models.Patient) error {
	return s.add(p)
}

func (s *Store) SavePatient(p *models.Patient) error {
	return s.save(p)
}

func (s *Store) GetPatient(id string) (*models.Patient, error) {
	var p models.Patient
	if err := s.get(&p, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPatientByPhone looks a patient up through the unique phone index.
func (s *Store) GetPatientByPhone(phone string) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.First(&p, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := s.db.Find(&patients).Error
	return patients, err
}

func (s *Store) DeletePatient(id string) error {
	return s.db.Delete(&models.Patient{}, "id = ?", id).Error
}

func (s *Store) ClearPatients() error {
	return s.clear(&models.Patient{})
}
