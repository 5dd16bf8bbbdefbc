package cron

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"clinicdesk/models"
	"clinicdesk/state"
	"clinicdesk/utils"
)

var (
	// notified maps an appointment id plus its scheduled slot to the slot's
	// start time, so the minute scan neither duplicates a reminder nor
	// misses one after the appointment is rescheduled. Entries whose start
	// has passed are pruned on each scan.
	notified   = make(map[string]time.Time)
	notifiedMu sync.Mutex
)

// StartCronJobs initializes and starts the scheduler for appointment
// reminders and the daily schedule digest.
func StartCronJobs(s *state.State) {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", func() { raiseUpcomingReminders(s, time.Now()) })
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Mail the day's schedule to the clinic inbox every morning
	_, err = c.AddFunc("0 7 * * *", func() { sendDailyDigest(s, time.Now()) })
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

func reminderKey(a models.Appointment) string {
	return a.ID + "|" + a.Date + " " + a.Time
}

// raiseUpcomingReminders raises an in-app notification for every confirmed
// appointment starting within [now, now+1h).
func raiseUpcomingReminders(s *state.State, now time.Time) {
	if !s.Settings().NotificationsEnabled {
		return
	}

	pruneNotified(now)
	endWindow := now.Add(time.Hour)

	for _, appointment := range s.Appointments() {
		if appointment.Status != models.StatusConfirmed {
			continue
		}
		startsAt, err := appointment.StartsAt()
		if err != nil {
			log.Printf("Skipping appointment %s with bad schedule: %v", appointment.ID, err)
			continue
		}
		if startsAt.Before(now) || !startsAt.Before(endWindow) {
			continue
		}

		key := reminderKey(appointment)
		notifiedMu.Lock()
		_, seen := notified[key]
		if !seen {
			notified[key] = startsAt
		}
		notifiedMu.Unlock()
		if seen {
			continue
		}

		s.AddNotification(fmt.Sprintf("Upcoming %s appointment at %s", appointment.Type, appointment.Time))
		log.Printf("Raised reminder for appointment %s at %s", appointment.ID, appointment.Time)
	}
}

// pruneNotified drops dedup entries whose slot has already started.
func pruneNotified(now time.Time) {
	notifiedMu.Lock()
	defer notifiedMu.Unlock()
	for key, startsAt := range notified {
		if startsAt.Before(now) {
			delete(notified, key)
		}
	}
}

// sendDailyDigest mails the day's schedule to the configured clinic inbox.
func sendDailyDigest(s *state.State, now time.Time) {
	to := os.Getenv("CLINIC_EMAIL")
	if to == "" {
		return
	}

	schedule := s.TodaySchedule(now)
	if len(schedule) == 0 {
		return
	}

	subject, body := digestMail(schedule, now)
	if err := utils.SendEmail(to, subject, body); err != nil {
		log.Printf("Failed to send daily digest: %v", err)
		return
	}
	log.Printf("Sent daily digest with %d appointments to %s", len(schedule), to)
}

func digestMail(schedule []models.Appointment, now time.Time) (string, string) {
	rows := ""
	for _, appointment := range schedule {
		rows += fmt.Sprintf("<li><strong>%s</strong> - %s (%s)</li>",
			appointment.Time, appointment.Type, appointment.Status)
	}
	subject := fmt.Sprintf("Clinic schedule for %s", utils.DateOf(now))
	body := fmt.Sprintf(`
		<p>Good morning,</p>
		<p>There are %d appointments scheduled today:</p>
		<ul>%s</ul>
		<p>Best regards,</p>
		<p>ClinicDesk</p>
	`, len(schedule), rows)
	return subject, body
}
