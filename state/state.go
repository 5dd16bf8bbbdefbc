// Package state holds the in-memory snapshot the dashboard reads from. The
// snapshot is loaded from the store at startup, mutated by the controllers
// after each successful write, and flushed back in bulk on explicit save or
// shutdown.
package state

import (
	"sort"
	"strings"
	"sync"
	"time"

	"clinicdesk/models"
	"clinicdesk/store"
	"clinicdesk/utils"
)

type State struct {
	mu            sync.RWMutex
	doctors       map[string]models.Doctor
	patients      map[string]models.Patient
	appointments  map[string]models.Appointment
	notifications []models.Notification
	settings      models.Settings
}

func New() *State {
	return &State{
		doctors:      make(map[string]models.Doctor),
		patients:     make(map[string]models.Patient),
		appointments: make(map[string]models.Appointment),
		settings:     models.DefaultSettings(),
	}
}

// Load replaces the snapshot with the store's current contents.
func (s *State) Load(st *store.Store) error {
	doctors, err := st.ListDoctors()
	if err != nil {
		return err
	}
	patients, err := st.ListPatients()
	if err != nil {
		return err
	}
	appointments, err := st.ListAppointments()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = make(map[string]models.Doctor, len(doctors))
	for _, d := range doctors {
		s.doctors[d.ID] = d
	}
	s.patients = make(map[string]models.Patient, len(patients))
	for _, p := range patients {
		s.patients[p.ID] = p
	}
	s.appointments = make(map[string]models.Appointment, len(appointments))
	for _, a := range appointments {
		s.appointments[a.ID] = a
	}
	return nil
}

// Snapshot copies the three collections into a backup bundle.
func (s *State) Snapshot() *models.Backup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b := &models.Backup{
		Doctors:      s.doctorsLocked(),
		Patients:     s.patientsLocked(),
		Appointments: s.appointmentsLocked(),
		ExportedAt:   time.Now().UTC(),
		Version:      models.BackupVersion,
	}
	return b
}

func (s *State) PutDoctor(d models.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors[d.ID] = d
}

func (s *State) RemoveDoctor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.doctors, id)
}

func (s *State) Doctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctorsLocked()
}

func (s *State) PutPatient(p models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[p.ID] = p
}

func (s *State) RemovePatient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.patients, id)
}

func (s *State) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patientsLocked()
}

func (s *State) PutAppointment(a models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID] = a
}

func (s *State) RemoveAppointment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.appointments, id)
}

func (s *State) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointmentsLocked()
}

// SearchDoctors matches the query against doctor names and specialties,
// case-insensitively.
func (s *State) SearchDoctors(query string) []models.Doctor {
	q := strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Doctor
	for _, d := range s.doctors {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Specialty), q) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SearchPatients matches the query against patient names and phone numbers.
func (s *State) SearchPatients(query string) []models.Patient {
	q := strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Patient
	for _, p := range s.patients {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(p.Phone, q) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *State) AddNotification(message string) models.Notification {
	n := models.Notification{
		ID:        utils.NewID(),
		Message:   message,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return n
}

func (s *State) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	// newest first
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// MarkNotificationRead flips one notification to read. It reports whether
// the id was found.
func (s *State) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

func (s *State) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *State) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *State) SetSettings(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *State) doctorsLocked() []models.Doctor {
	out := make([]models.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *State) patientsLocked() []models.Patient {
	out := make([]models.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *State) appointmentsLocked() []models.Appointment {
	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}
