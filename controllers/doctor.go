package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clinicdesk/models"
	"clinicdesk/store"
	"clinicdesk/utils"
)

// GetAllDoctors godoc
// @Summary Get all doctors
// @Description Get all doctors from the dashboard snapshot
// @Tags doctors
// @Produce json
// @Success 200 {array} models.Doctor
// @Router /doctors [get]
func GetAllDoctors(c *fiber.Ctx) error {
	return c.JSON(State.Doctors())
}

// GetDoctor godoc
// @Summary Get a doctor by ID
// @Tags doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} models.Doctor
// @Failure 404 {object} utils.ErrorResponse
// @Router /doctors/{id} [get]
func GetDoctor(c *fiber.Ctx) error {
	doctor, err := Store.GetDoctor(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}

// SearchDoctors godoc
// @Summary Search doctors by name or specialty
// @Tags doctors
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.Doctor
// @Router /doctors/search [get]
func SearchDoctors(c *fiber.Ctx) error {
	return c.JSON(State.SearchDoctors(c.Query("q")))
}

// CreateDoctor godoc
// @Summary Create a new doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Param doctor body models.Doctor true "Doctor"
// @Success 201 {object} models.Doctor
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /doctors [post]
func CreateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if doctor.ID == "" {
		doctor.ID = utils.NewID()
	}
	if err := Store.AddDoctor(&doctor); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Doctor already exists",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor",
			Error:   err.Error(),
		})
	}
	State.PutDoctor(doctor)
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// UpdateDoctor godoc
// @Summary Insert or replace a doctor by ID
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param doctor body models.Doctor true "Doctor"
// @Success 200 {object} models.Doctor
// @Failure 400 {object} utils.ErrorResponse
// @Router /doctors/{id} [put]
func UpdateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	doctor.ID = c.Params("id")
	if err := Store.SaveDoctor(&doctor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update doctor",
			Error:   err.Error(),
		})
	}
	State.PutDoctor(doctor)
	return c.JSON(doctor)
}

// DeleteDoctor godoc
// @Summary Delete a doctor by ID
// @Tags doctors
// @Param id path string true "Doctor ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponse
// @Router /doctors/{id} [delete]
func DeleteDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := Store.DeleteDoctor(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete doctor",
			Error:   err.Error(),
		})
	}
	State.RemoveDoctor(id)
	return c.SendStatus(fiber.StatusNoContent)
}
