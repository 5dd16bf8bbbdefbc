package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicdesk/models"
	"clinicdesk/store"
	"clinicdesk/utils"
)

// GetAllPatients godoc
// @Summary Get all patients
// @Tags patients
// @Produce json
// @Success 200 {array} models.Patient
// @Router /patients [get]
func GetAllPatients(c *fiber.Ctx) error {
	return c.JSON(State.Patients())
}

// GetPatient godoc
// @Summary Get a patient by ID
// @Tags patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} models.Patient
// @Failure 404 {object} utils.ErrorResponse
// @Router /patients/{id} [get]
func GetPatient(c *fiber.Ctx) error {
	patient, err := Store.GetPatient(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(patient)
}

// SearchPatients godoc
// @Summary Search patients by name or phone
// @Tags patients
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.Patient
// @Router /patients/search [get]
func SearchPatients(c *fiber.Ctx) error {
	return c.JSON(State.SearchPatients(c.Query("q")))
}

// CreatePatient godoc
// @Summary Register a new patient
// @Description Register a new patient. Phone numbers are unique; a duplicate
// @Description phone or id is rejected by the storage layer.
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body models.Patient true "Patient"
// @Success 201 {object} models.Patient
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /patients [post]
func CreatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if patient.ID == "" {
		patient.ID = utils.NewID()
	}
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = time.Now()
	}
	if err := Store.AddPatient(&patient); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Patient id or phone number already registered",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create patient",
			Error:   err.Error(),
		})
	}
	State.PutPatient(patient)
	return c.Status(fiber.StatusCreated).JSON(patient)
}

// UpdatePatient godoc
// @Summary Insert or replace a patient by ID
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param patient body models.Patient true "Patient"
// @Success 200 {object} models.Patient
// @Failure 400 {object} utils.ErrorResponse
// @Router /patients/{id} [put]
func UpdatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	patient.ID = c.Params("id")
	if err := Store.SavePatient(&patient); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Phone number already registered to another patient",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update patient",
			Error:   err.Error(),
		})
	}
	State.PutPatient(patient)
	return c.JSON(patient)
}

// DeletePatient godoc
// @Summary Delete a patient by ID
// @Tags patients
// @Param id path string true "Patient ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients/{id} [delete]
func DeletePatient(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := Store.DeletePatient(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete patient",
			Error:   err.Error(),
		})
	}
	State.RemovePatient(id)
	return c.SendStatus(fiber.StatusNoContent)
}
