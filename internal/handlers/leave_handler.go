package handlers

import (
	"errors"

	"github.com/anirudhms/campus-counsel/internal/services"
	"github.com/gofiber/fiber/v2"
)

func ListLeaveRequestsHandler(c *fiber.Ctx) error {
	requests, err := services.ListLeaveRequestsByCounselor(c.Context(), c.Query("counselorId"))
	if errors.Is(err, services.ErrCounselorNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Counselor not found"})
	}
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(requests)
}
