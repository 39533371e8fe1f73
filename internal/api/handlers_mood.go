package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/services"
)

type moodPayload struct {
	Mood  int    `json:"mood"`
	Notes string `json:"notes"`
}

func (handler *Handler) GetTodayMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entry, found, err := handler.moods.Today(user.ID, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load mood")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no mood recorded today")
	}
	return c.JSON(entry)
}

func (handler *Handler) GetMoodHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.moods.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load mood history")
	}
	return c.JSON(entries)
}

func (handler *Handler) SaveTodayMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload moodPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.moods.SaveToday(user.ID, payload.Mood, payload.Notes, handler.now(), handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMoodValue) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save mood")
	}
	return c.JSON(entry)
}
