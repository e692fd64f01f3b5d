package repo

import (
	"time"

	"bot9-palace-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepo represents the repository for the booking model
type BookingRepo struct {
	db *gorm.DB
}

type BookingRepoInterface interface {
	CreateBooking(booking *models.Booking) (uuid.UUID, error)
	ListBookings(sessionKey string) ([]models.Booking, error)
}

func NewBookingRepository(db *gorm.DB) BookingRepoInterface {
	return &BookingRepo{db: db}
}

// CreateBooking records a confirmed reservation in the database
func (r *BookingRepo) CreateBooking(booking *models.Booking) (uuid.UUID, error) {
	id := uuid.New()
	booking.UUID = id
	booking.CreatedAt = time.Now()
	err := r.db.Create(booking).Error
	return id, err
}

// ListBookings returns all bookings made during one session
func (r *BookingRepo) ListBookings(sessionKey string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("session_key = ?", sessionKey).Order("created_at ASC").Find(&bookings).Error
	return bookings, err
}
