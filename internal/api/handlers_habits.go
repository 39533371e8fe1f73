package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/services"
)

type habitPayload struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Cadence       string `json:"cadence"`
	ReminderType  string `json:"reminder_type"`
	ReminderValue string `json:"reminder_value"`
}

type statusPayload struct {
	Status string `json:"status"`
}

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	views, err := handler.habits.ListHabits(user.ID, handler.now(), handler.location)
	if err != nil {
		return habitServiceError(c, err)
	}
	return c.JSON(views)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload habitPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	habit, err := handler.habits.CreateHabit(user.ID, services.HabitInput{
		Name:          payload.Name,
		Category:      payload.Category,
		Cadence:       payload.Cadence,
		ReminderType:  payload.ReminderType,
		ReminderValue: payload.ReminderValue,
	})
	if err != nil {
		return habitServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) GetHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	habitID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	view, err := handler.habits.GetHabit(user.ID, habitID, handler.now(), handler.location)
	if err != nil {
		return habitServiceError(c, err)
	}
	return c.JSON(view)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	habitID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	var payload habitPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	habit, err := handler.habits.UpdateHabit(user.ID, habitID, services.HabitInput{
		Name:          payload.Name,
		Category:      payload.Category,
		ReminderType:  payload.ReminderType,
		ReminderValue: payload.ReminderValue,
	})
	if err != nil {
		return habitServiceError(c, err)
	}
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	habitID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	if err := handler.habits.DeleteHabit(user.ID, habitID); err != nil {
		return habitServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ChangeHabitStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	habitID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	var payload statusPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	result, err := handler.habits.ChangeStatus(user.ID, habitID, payload.Status, handler.now(), handler.location)
	if err != nil {
		return habitServiceError(c, err)
	}
	return c.JSON(result)
}

func habitServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, "habit not found")
	case errors.Is(err, services.ErrDuplicateHabitName):
		return apiError(c, fiber.StatusConflict, "habit name already in use")
	case errors.Is(err, services.ErrTransactionConflict):
		return apiError(c, fiber.StatusConflict, "habit was modified concurrently, retry")
	case errors.Is(err, services.ErrInvalidHabitName),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidCadence),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidReminder):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "habit operation failed")
	}
}
