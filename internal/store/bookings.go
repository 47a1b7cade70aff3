package store

import (
	"time"

	"github.com/sirupsen/logrus"

	"campus_hop/internal/models"
)

func (s *Store) ListBookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// UserBookings returns the bookings owned by userID, preserving creation
// order.
func (s *Store) UserBookings(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) GetBooking(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// AddBooking stores a new booking, stamping id and creation time.
func (s *Store) AddBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = newID("booking")
	b.CreatedAt = time.Now()
	s.bookings = append(s.bookings, b)
	s.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"user_id":    b.UserID,
		"route_id":   b.RouteID,
	}).Info("Booking saved to store")
	return b
}

// CancelBooking flips the booking's status to cancelled. The record stays in
// the collection so it shows up under the user's past bookings.
func (s *Store) CancelBooking(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = models.BookingCancelled
			s.log.WithField("booking_id", id).Info("Booking cancelled in store")
			return true
		}
	}
	return false
}

// BookingUpdate carries the merge-updatable booking fields. Nil means
// "leave unchanged".
type BookingUpdate struct {
	Status        *string
	ScheduledTime *time.Time
}

func (s *Store) UpdateBooking(id string, upd BookingUpdate) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if upd.Status != nil {
			s.bookings[i].Status = *upd.Status
		}
		if upd.ScheduledTime != nil {
			s.bookings[i].ScheduledTime = *upd.ScheduledTime
		}
		s.log.WithField("booking_id", id).Info("Booking updated in store")
		return s.bookings[i], true
	}
	return models.Booking{}, false
}
