package store

import "clinicdesk/models"

func (s *Store) AddAppointment(a *models.Appointment) error {
	return s.add(a)
}

func (s *Store) SaveAppointment(a *models.Appointment) error {
	return s.save(a)
}

func (s *Store) GetAppointment(id string) (*models.Appointment, error) {
	var a models.Appointment
	if err := s.get(&a, id); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Find(&appointments).Error
	return appointments, err
}

// ListAppointmentsByDate uses the date secondary index; date is 2006-01-02.
func (s *Store) ListAppointmentsByDate(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("date = ?", date).Order("time").Find(&appointments).Error
	return appointments, err
}

func (s *Store) ListAppointmentsByDoctor(doctorID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("doctor_id = ?", doctorID).Find(&appointments).Error
	return appointments, err
}

func (s *Store) ListAppointmentsByPatient(patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("patient_id = ?", patientID).Find(&appointments).Error
	return appointments, err
}

func (s *Store) DeleteAppointment(id string) error {
	return s.db.Delete(&models.Appointment{}, "id = ?", id).Error
}

func (s *Store) ClearAppointments() error {
	return s.clear(&models.Appointment{})
}
