package v1

import (
	"bot9-palace-backend/internal/handlers"
	"bot9-palace-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerBookings(r fiber.Router, bookings repo.BookingRepoInterface) {
	bookingHandler := handlers.NewBookingHandler(bookings)

	r.Get("/bookings/:userId", bookingHandler.GetBookingsByUserID)
}
