package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campus_hop/internal/models"
	"campus_hop/internal/schedule"
	"campus_hop/internal/store"
)

// BookingController runs the reservation flow and the booking listings.
type BookingController struct {
	store *store.Store
	now   func() time.Time // swapped out in tests
}

func NewBookingController(s *store.Store) *BookingController {
	return &BookingController{store: s, now: time.Now}
}

type bookingInput struct {
	RouteID       string `json:"route_id"`
	TimeSlotID    string `json:"time_slot_id"`
	PickupStopID  string `json:"pickup_stop_id"`
	DropoffStopID string `json:"dropoff_stop_id"`
}

// ListSlots returns the selectable departure times for the next twelve
// hours.
func (bc *BookingController) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": schedule.Generate(bc.now())})
}

// CreateBooking validates the reservation step by step and stores the
// booking. Each failure returns its own message and leaves the store
// untouched.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.RouteID == "" || input.TimeSlotID == "" || input.PickupStopID == "" || input.DropoffStopID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
		return
	}

	if input.PickupStopID == input.DropoffStopID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pickup and dropoff locations cannot be the same"})
		return
	}

	// First active shuttle takes the booking; capacity and route pairing are
	// out of scope for the prototype.
	shuttle, found := bc.store.FirstActiveShuttle()
	if !found {
		c.JSON(http.StatusConflict, gin.H{"error": "Sorry, there are no shuttles available at this time"})
		return
	}

	route, found := bc.store.GetRoute(input.RouteID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "The selected route could not be found"})
		return
	}

	pickup, pickupOK := route.FindStop(input.PickupStopID)
	dropoff, dropoffOK := route.FindStop(input.DropoffStopID)
	if !pickupOK || !dropoffOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The selected stops could not be found"})
		return
	}

	slot, found := schedule.Find(schedule.Generate(bc.now()), input.TimeSlotID)
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The selected time slot is not available"})
		return
	}

	user, _ := bc.store.UserByID(userID)

	booking := bc.store.AddBooking(models.Booking{
		UserID:          userID,
		UserName:        user.Name,
		UserEmail:       user.Email,
		RouteID:         route.ID,
		RouteName:       route.Name,
		ShuttleID:       shuttle.ID,
		ShuttleName:     shuttle.Name,
		PickupStopID:    pickup.ID,
		PickupStopName:  pickup.Name,
		DropoffStopID:   dropoff.ID,
		DropoffStopName: dropoff.Name,
		BookingTime:     bc.now(),
		ScheduledTime:   slot.Date,
		Status:          models.BookingConfirmed,
	})

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"user_id":    userID,
		"route_id":   route.ID,
		"slot":       slot.ID,
	}).Info("Booking created")
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// ListMyBookings returns the caller's bookings split into upcoming
// (pending/confirmed) and past (completed/cancelled), creation order
// preserved within each group.
func (bc *BookingController) ListMyBookings(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	upcoming := make([]models.Booking, 0)
	past := make([]models.Booking, 0)
	for _, b := range bc.store.UserBookings(userID) {
		if b.Upcoming() {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
}

// CancelBooking lets a user cancel their own booking.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	id := c.Param("id")

	booking, found := bc.store.GetBooking(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only cancel your own bookings"})
		return
	}

	bc.store.CancelBooking(id)
	cancelled, _ := bc.store.GetBooking(id)
	c.JSON(http.StatusOK, gin.H{"booking": cancelled})
}

// ListAllBookings returns every booking in the store. Admin use only.
func (bc *BookingController) ListAllBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": bc.store.ListBookings()})
}

// UpdateBookingStatus moves a booking through its lifecycle. Admin use only.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidBookingStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return
	}

	booking, found := bc.store.UpdateBooking(c.Param("id"), store.BookingUpdate{Status: &input.Status})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
