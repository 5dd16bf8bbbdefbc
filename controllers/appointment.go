package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicdesk/models"
	"clinicdesk/store"
	"clinicdesk/utils"
)

// GetAllAppointments godoc
// @Summary Get all appointments
// @Description Get all appointments, optionally restricted to one secondary
// @Description index (doctor_id, patient_id or date query parameters)
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func GetAllAppointments(c *fiber.Ctx) error {
	var (
		appointments []models.Appointment
		err          error
	)
	switch {
	case c.Query("doctor_id") != "":
		appointments, err = Store.ListAppointmentsByDoctor(c.Query("doctor_id"))
	case c.Query("patient_id") != "":
		appointments, err = Store.ListAppointmentsByPatient(c.Query("patient_id"))
	case c.Query("date") != "":
		appointments, err = Store.ListAppointmentsByDate(c.Query("date"))
	default:
		return c.JSON(State.Appointments())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [get]
func GetAppointment(c *fiber.Ctx) error {
	appointment, err := Store.GetAppointment(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment godoc
// @Summary Book a new appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body models.Appointment true "Appointment"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /appointments [post]
func CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if appointment.Status != "" && !appointment.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment status",
			Error:   fmt.Sprintf("unknown status %q", appointment.Status),
		})
	}
	if appointment.ID == "" {
		appointment.ID = utils.NewID()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	if err := Store.AddAppointment(&appointment); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Appointment already exists",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	if appointment.Status == "" {
		appointment.Status = models.StatusPending
	}
	State.PutAppointment(appointment)
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointment godoc
// @Summary Insert or replace an appointment by ID
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param appointment body models.Appointment true "Appointment"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Router /appointments/{id} [put]
func UpdateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if appointment.Status != "" && !appointment.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment status",
			Error:   fmt.Sprintf("unknown status %q", appointment.Status),
		})
	}
	appointment.ID = c.Params("id")
	if err := Store.SaveAppointment(&appointment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}
	State.PutAppointment(appointment)
	return c.JSON(appointment)
}

// DeleteAppointment godoc
// @Summary Delete an appointment by ID
// @Tags appointments
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments/{id} [delete]
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := Store.DeleteAppointment(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	State.RemoveAppointment(id)
	return c.SendStatus(fiber.StatusNoContent)
}
