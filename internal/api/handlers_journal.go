package api

import "github.com/gofiber/fiber/v2"

type journalPayload struct {
	Reflection string `json:"reflection"`
	Gratitude  string `json:"gratitude"`
}

func (handler *Handler) GetJournalEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, found, err := handler.journal.Entry(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load journal entry")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no journal entry for this date")
	}
	return c.JSON(entry)
}

func (handler *Handler) SaveJournalEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	var payload journalPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.journal.SaveEntry(user.ID, day, payload.Reflection, payload.Gratitude, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save journal entry")
	}
	return c.JSON(entry)
}
