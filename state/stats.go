package state

import (
	"time"

	"clinicdesk/models"
)

type Overview struct {
	TotalDoctors        int       `json:"total_doctors"`
	ActiveDoctors       int       `json:"active_doctors"`
	TotalPatients       int       `json:"total_patients"`
	TotalAppointments   int       `json:"total_appointments"`
	TodayAppointments   int       `json:"today_appointments"`
	UnreadNotifications int       `json:"unread_notifications"`
	LastUpdated         time.Time `json:"last_updated"`
}

// ChartPoint is one labeled bucket of an appointment chart series.
type ChartPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Overview computes the dashboard summary as of now.
func (s *State) Overview(now time.Time) Overview {
	today := now.Format("2006-01-02")
	s.mu.RLock()
	defer s.mu.RUnlock()

	o := Overview{
		TotalDoctors:      len(s.doctors),
		TotalPatients:     len(s.patients),
		TotalAppointments: len(s.appointments),
		LastUpdated:       now,
	}
	for _, d := range s.doctors {
		if d.Active {
			o.ActiveDoctors++
		}
	}
	for _, a := range s.appointments {
		if a.Date == today && a.Status != models.StatusCanceled {
			o.TodayAppointments++
		}
	}
	for _, n := range s.notifications {
		if !n.Read {
			o.UnreadNotifications++
		}
	}
	return o
}

// TodaySchedule returns today's non-canceled appointments ordered by time.
func (s *State) TodaySchedule(now time.Time) []models.Appointment {
	today := now.Format("2006-01-02")
	var out []models.Appointment
	for _, a := range s.Appointments() {
		if a.Date == today && a.Status != models.StatusCanceled {
			out = append(out, a)
		}
	}
	return out
}

// WeeklySeries buckets appointments per day over the trailing seven days,
// oldest day first. Labels are 2006-01-02 dates.
func (s *State) WeeklySeries(now time.Time) []ChartPoint {
	points := make([]ChartPoint, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6).Format("2006-01-02")
		points[i] = ChartPoint{Label: day}
		index[day] = i
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if i, ok := index[a.Date]; ok {
			points[i].Count++
		}
	}
	return points
}

// StatusBreakdown counts appointments per status, one bucket per known
// status even when empty.
func (s *State) StatusBreakdown() []ChartPoint {
	statuses := []models.AppointmentStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusCompleted,
		models.StatusCanceled,
	}
	points := make([]ChartPoint, len(statuses))
	index := make(map[models.AppointmentStatus]int, len(statuses))
	for i, st := range statuses {
		points[i] = ChartPoint{Label: string(st)}
		index[st] = i
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if i, ok := index[a.Status]; ok {
			points[i].Count++
		}
	}
	return points
}
