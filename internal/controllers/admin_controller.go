package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campus_hop/internal/models"
	"campus_hop/internal/store"
)

// AdminController serves the dashboard overview counters.
type AdminController struct {
	store *store.Store
}

func NewAdminController(s *store.Store) *AdminController {
	return &AdminController{store: s}
}

// Overview collects aggregate counters about the current state of the
// system for the admin dashboard.
func (ac *AdminController) Overview(c *gin.Context) {
	shuttles := ac.store.ListShuttles()
	routes := ac.store.ListRoutes()
	bookings := ac.store.ListBookings()
	users := ac.store.ListUsers()

	activeShuttles := 0
	for _, s := range shuttles {
		if s.Status == models.ShuttleActive {
			activeShuttles++
		}
	}

	activeRoutes := 0
	for _, r := range routes {
		if r.Active {
			activeRoutes++
		}
	}

	byStatus := map[string]int{
		models.BookingPending:   0,
		models.BookingConfirmed: 0,
		models.BookingCompleted: 0,
		models.BookingCancelled: 0,
	}
	for _, b := range bookings {
		byStatus[b.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().UTC(),
		"metrics": gin.H{
			"total_shuttles":     len(shuttles),
			"active_shuttles":    activeShuttles,
			"total_routes":       len(routes),
			"active_routes":      activeRoutes,
			"total_bookings":     len(bookings),
			"bookings_by_status": byStatus,
			"registered_users":   len(users),
		},
	})
}
