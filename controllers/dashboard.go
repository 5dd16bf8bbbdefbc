package controllers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicdesk/models"
)

// GetDashboardOverview godoc
// @Summary Dashboard summary counters
// @Description Record counts, today's appointment count and the unread
// @Description notification count, computed from the in-memory snapshot
// @Tags dashboard
// @Produce json
// @Success 200 {object} state.Overview
// @Router /dashboard/overview [get]
func GetDashboardOverview(c *fiber.Ctx) error {
	return c.JSON(State.Overview(time.Now()))
}

// GetTodaySchedule godoc
// @Summary Today's appointments ordered by time
// @Tags dashboard
// @Produce json
// @Success 200 {array} models.Appointment
// @Router /dashboard/today [get]
func GetTodaySchedule(c *fiber.Ctx) error {
	schedule := State.TodaySchedule(time.Now())
	if schedule == nil {
		schedule = []models.Appointment{}
	}
	return c.JSON(schedule)
}

// GetDashboardCharts godoc
// @Summary Chart series for the two dashboard charts
// @Description Appointments per day over the trailing week and the
// @Description appointment status distribution
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string][]state.ChartPoint
// @Router /dashboard/charts [get]
func GetDashboardCharts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"weekly":   State.WeeklySeries(time.Now()),
		"statuses": State.StatusBreakdown(),
	})
}

// GetRecentAppointments godoc
// @Summary Most recently created appointments
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum results (default 5)"
// @Success 200 {array} models.Appointment
// @Router /dashboard/recent [get]
func GetRecentAppointments(c *fiber.Ctx) error {
	limit := 5
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	appointments := State.Appointments()
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})
	if len(appointments) > limit {
		appointments = appointments[:limit]
	}
	return c.JSON(appointments)
}
