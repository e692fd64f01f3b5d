package handlers

import (
	"log"

	"bot9-palace-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

// for simple read operations a service layer is not required
type BookingHandler struct {
	bookings repo.BookingRepoInterface
}

func NewBookingHandler(bookings repo.BookingRepoInterface) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// function to list the bookings made during one session
func (h *BookingHandler) GetBookingsByUserID(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	bookings, err := h.bookings.ListBookings(userID)
	if err != nil {
		log.Println(err, "Error getting bookings")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get bookings",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"bookings": bookings,
	})
}
