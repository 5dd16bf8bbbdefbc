package store

import "clinicdesk/models"

func (s *Store) AddDoctor(d *models.Doctor) error {
	return s.add(d)
}

func (s *Store) SaveDoctor(d *models.Doctor) error {
	return s.save(d)
}

func (s *Store) GetDoctor(id string) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.get(&d, id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) ListDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.db.Find(&doctors).Error
	return doctors, err
}

// ListDoctorsBySpecialty uses the specialty secondary index.
func (s *Store) ListDoctorsBySpecialty(specialty string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.db.Where("specialty = ?", specialty).Find(&doctors).Error
	return doctors, err
}

func (s *Store) DeleteDoctor(id string) error {
	return s.db.Delete(&models.Doctor{}, "id = ?", id).Error
}

func (s *Store) ClearDoctors() error {
	return s.clear(&models.Doctor{})
}
