package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_hop/internal/models"
	"campus_hop/internal/store"
)

// fixedClock pins slot generation so slot ids are predictable in tests.
var fixedClock = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newBookingController(s *store.Store) *BookingController {
	bc := NewBookingController(s)
	bc.now = func() time.Time { return fixedClock }
	return bc
}

func TestCreateBooking(t *testing.T) {
	validInput := func() gin.H {
		return gin.H{
			"route_id":        "route_1",
			"time_slot_id":    "09:30",
			"pickup_stop_id":  "stop_1",
			"dropoff_stop_id": "stop_3",
		}
	}

	t.Run("happy path stores a denormalized confirmed booking", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		bc := newBookingController(s)

		c, w := jsonRequest(t, http.MethodPost, "/bookings", validInput())
		c.Set("user_id", "2")
		bc.CreateBooking(c)

		require.Equal(t, http.StatusCreated, w.Code)
		bookings := s.UserBookings("2")
		require.Len(t, bookings, 2) // seed booking + new one
		b := bookings[1]
		assert.Equal(t, models.BookingConfirmed, b.Status)
		assert.NotEqual(t, b.PickupStopID, b.DropoffStopID)
		assert.Equal(t, "Main Gate", b.PickupStopName)
		assert.Equal(t, "Hostel Complex", b.DropoffStopName)
		assert.Equal(t, "Main Campus Loop", b.RouteName)
		assert.Equal(t, "Shuttle A", b.ShuttleName, "first active shuttle takes the booking")
		assert.Equal(t, "Student User", b.UserName)
		assert.True(t, b.ScheduledTime.Equal(fixedClock.Add(30*time.Minute)))
	})

	t.Run("missing fields abort before any store mutation", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		bc := newBookingController(s)

		input := validInput()
		input["time_slot_id"] = ""
		c, w := jsonRequest(t, http.MethodPost, "/bookings", input)
		c.Set("user_id", "2")
		bc.CreateBooking(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "fill in all required fields")
		assert.Len(t, s.UserBookings("2"), 1)
	})

	t.Run("pickup equal to dropoff is rejected", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		bc := newBookingController(s)

		input := validInput()
		input["dropoff_stop_id"] = "stop_1"
		c, w := jsonRequest(t, http.MethodPost, "/bookings", input)
		c.Set("user_id", "2")
		bc.CreateBooking(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cannot be the same")
		assert.Len(t, s.UserBookings("2"), 1)
	})

	t.Run("no active shuttle means no booking", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		for _, sh := range s.ListShuttles() {
			sh.Status = models.ShuttleMaintenance
			s.UpdateShuttle(sh)
		}
		bc := newBookingController(s)

		c, w := jsonRequest(t, http.MethodPost, "/bookings", validInput())
		c.Set("user_id", "2")
		bc.CreateBooking(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Len(t, s.UserBookings("2"), 1)
	})

	t.Run("unknown route is a lookup miss", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		bc := newBookingController(s)

		input := validInput()
		input["route_id"] = "route_404"
		c, w := jsonRequest(t, http.MethodPost, "/bookings", input)
		c.Set("user_id", "2")
		bc.CreateBooking(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("stops must belong to the selected route", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		bc := newBookingController(s)

		input := validInput()
		input["pickup_stop_id"] = "stop_7" // route_2 stop
		c, w := jsonRequest(t, http.MethodPost, "/bookings", input)
		c.Set("user_id", "2")
		bc.CreateBooking(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "stops could not be found")
	})

	t.Run("stale slot id is rejected", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		bc := newBookingController(s)

		input := validInput()
		input["time_slot_id"] = "08:30" // already in the past at the fixed clock
		c, w := jsonRequest(t, http.MethodPost, "/bookings", input)
		c.Set("user_id", "2")
		bc.CreateBooking(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "time slot is not available")
	})
}

func TestListMyBookings(t *testing.T) {
	s := store.New(store.Seed(), nil)
	bc := newBookingController(s)

	extra := s.AddBooking(models.Booking{UserID: "2", Status: models.BookingConfirmed})
	s.CancelBooking(extra.ID)

	c, w := jsonRequest(t, http.MethodGet, "/bookings", nil)
	c.Set("user_id", "2")
	bc.ListMyBookings(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	upcoming := body["upcoming"].([]any)
	past := body["past"].([]any)
	assert.Len(t, upcoming, 1) // the confirmed seed booking
	require.Len(t, past, 1)
	cancelled := past[0].(map[string]any)
	assert.Equal(t, "cancelled", cancelled["status"])
}

func TestCancelBooking(t *testing.T) {
	t.Run("owner can cancel and it moves to past", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		bc := newBookingController(s)

		c, w := jsonRequest(t, http.MethodPost, "/bookings/booking_1/cancel", nil)
		c.Set("user_id", "2")
		c.Params = gin.Params{{Key: "id", Value: "booking_1"}}
		bc.CancelBooking(c)

		require.Equal(t, http.StatusOK, w.Code)
		got, _ := s.GetBooking("booking_1")
		assert.Equal(t, models.BookingCancelled, got.Status)
		assert.False(t, got.Upcoming())
	})

	t.Run("cannot cancel someone else's booking", func(t *testing.T) {
		s := store.New(store.Seed(), nil)
		bc := newBookingController(s)

		c, w := jsonRequest(t, http.MethodPost, "/bookings/booking_1/cancel", nil)
		c.Set("user_id", "1")
		c.Params = gin.Params{{Key: "id", Value: "booking_1"}}
		bc.CancelBooking(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		got, _ := s.GetBooking("booking_1")
		assert.Equal(t, models.BookingConfirmed, got.Status)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	s := store.New(store.Seed(), nil)
	bc := newBookingController(s)

	c, w := jsonRequest(t, http.MethodPatch, "/admin/bookings/booking_1/status", gin.H{"status": "completed"})
	c.Params = gin.Params{{Key: "id", Value: "booking_1"}}
	bc.UpdateBookingStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	got, _ := s.GetBooking("booking_1")
	assert.Equal(t, models.BookingCompleted, got.Status)

	c2, w2 := jsonRequest(t, http.MethodPatch, "/admin/bookings/booking_1/status", gin.H{"status": "teleported"})
	c2.Params = gin.Params{{Key: "id", Value: "booking_1"}}
	bc.UpdateBookingStatus(c2)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestListSlots(t *testing.T) {
	bc := newBookingController(store.New(store.Seed(), nil))

	c, w := jsonRequest(t, http.MethodGet, "/bookings/slots", nil)
	bc.ListSlots(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	slots := body["slots"].([]any)
	require.Len(t, slots, 24)
	first := slots[0].(map[string]any)
	assert.Equal(t, "09:00", first["id"])
}
