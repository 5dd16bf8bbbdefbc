package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"clinicdesk/models"
	"clinicdesk/redis"
	"clinicdesk/utils"
)

// GetSettings godoc
// @Summary Get the dashboard preferences
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Router /settings [get]
func GetSettings(c *fiber.Ctx) error {
	return c.JSON(State.Settings())
}

// UpdateSettings godoc
// @Summary Update the dashboard preferences
// @Description Stores the theme and notification toggles in memory and
// @Description mirrors them to Redis when configured
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body models.Settings true "Settings"
// @Success 200 {object} models.Settings
// @Failure 400 {object} utils.ErrorResponse
// @Router /settings [put]
func UpdateSettings(c *fiber.Ctx) error {
	var settings models.Settings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if settings.Theme != "light" && settings.Theme != "dark" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid theme",
			Error:   "theme must be light or dark",
		})
	}
	State.SetSettings(settings)
	if err := redis.SaveSettings(settings); err != nil {
		log.Println("Failed to mirror settings to redis: ", err)
	}
	return c.JSON(settings)
}
