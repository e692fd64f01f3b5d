package v1

import (
	"bot9-palace-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, conversations repo.ConversationRepoInterface, bookings repo.BookingRepoInterface) {
	registerHealth(r)
	registerChat(r, conversations)
	registerBookings(r, bookings)
}
