package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultConsistencyDays = 7
	maxConsistencyDays     = 90
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.stats.BuildOverview(user.ID, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build overview")
	}
	return c.JSON(overview)
}

func (handler *Handler) GetHeatmap(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reference := handler.now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01", raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month, expected YYYY-MM")
		}
		reference = parsed
	}

	days, err := handler.stats.BuildMonthHeatmap(user.ID, reference, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build heatmap")
	}
	return c.JSON(days)
}

func (handler *Handler) GetConsistency(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days := defaultConsistencyDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxConsistencyDays {
			return apiError(c, fiber.StatusBadRequest, "invalid days")
		}
		days = parsed
	}

	points, err := handler.stats.BuildConsistency(user.ID, days, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build consistency")
	}
	return c.JSON(points)
}

func (handler *Handler) GetMilestones(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	milestones, err := handler.stats.BuildMilestones(user.ID, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build milestones")
	}
	return c.JSON(milestones)
}
