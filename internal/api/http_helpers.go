package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

var errInvalidDayParam = errors.New("invalid date parameter")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		return time.Time{}, errInvalidDayParam
	}
	return parsed, nil
}

func parseIDParam(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(parsed), nil
}
