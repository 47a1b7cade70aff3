// internal/models/booking.go
package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is a user's reservation of a pickup/dropoff pair on a route at a
// chosen time. Names are stored alongside ids so listings never need joins.
type Booking struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email,omitempty"`
	RouteID         string    `json:"route_id"`
	RouteName       string    `json:"route_name"`
	ShuttleID       string    `json:"shuttle_id"`
	ShuttleName     string    `json:"shuttle_name"`
	PickupStopID    string    `json:"pickup_stop_id"`
	PickupStopName  string    `json:"pickup_stop_name"`
	DropoffStopID   string    `json:"dropoff_stop_id"`
	DropoffStopName string    `json:"dropoff_stop_name"`
	BookingTime     time.Time `json:"booking_time"`
	ScheduledTime   time.Time `json:"scheduled_time"`
	Status          string    `json:"status"` // "pending", "confirmed", "completed", "cancelled"
	CreatedAt       time.Time `json:"created_at"`
}

// ValidBookingStatus reports whether s is one of the known booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Upcoming reports whether the booking still counts toward a user's
// upcoming trips (pending or confirmed, regardless of clock).
func (b Booking) Upcoming() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
