package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_hop/internal/models"
	"campus_hop/internal/store"
)

// ShuttleController exposes the shuttle fleet: public listing for riders and
// full CRUD for admins.
type ShuttleController struct {
	store *store.Store
}

func NewShuttleController(s *store.Store) *ShuttleController {
	return &ShuttleController{store: s}
}

func (sc *ShuttleController) ListShuttles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": sc.store.ListShuttles()})
}

func (sc *ShuttleController) GetShuttle(c *gin.Context) {
	shuttle, found := sc.store.GetShuttle(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shuttle not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shuttle": shuttle})
}

type shuttleInput struct {
	Name            string         `json:"name" binding:"required"`
	Capacity        int            `json:"capacity" binding:"required"`
	LicensePlate    string         `json:"license_plate"`
	CurrentLocation *models.LatLng `json:"current_location"`
	Status          string         `json:"status"`
	DriverName      string         `json:"driver_name" binding:"required"`
	DriverContact   string         `json:"driver_contact" binding:"required"`
}

// CreateShuttle adds a shuttle to the fleet; status defaults to active.
func (sc *ShuttleController) CreateShuttle(c *gin.Context) {
	var input shuttleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shuttle input: " + err.Error()})
		return
	}
	if input.Status == "" {
		input.Status = models.ShuttleActive
	}
	if !models.ValidShuttleStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shuttle status"})
		return
	}

	shuttle := sc.store.AddShuttle(models.Shuttle{
		Name:            input.Name,
		Capacity:        input.Capacity,
		LicensePlate:    input.LicensePlate,
		CurrentLocation: input.CurrentLocation,
		Status:          input.Status,
		DriverName:      input.DriverName,
		DriverContact:   input.DriverContact,
	})
	c.JSON(http.StatusCreated, gin.H{"shuttle": shuttle})
}

func (sc *ShuttleController) UpdateShuttle(c *gin.Context) {
	id := c.Param("id")
	existing, found := sc.store.GetShuttle(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shuttle not found"})
		return
	}

	// Bind over the existing record so omitted fields stay unchanged.
	if err := c.ShouldBindJSON(&existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	existing.ID = id
	if !models.ValidShuttleStatus(existing.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shuttle status"})
		return
	}

	sc.store.UpdateShuttle(existing)
	c.JSON(http.StatusOK, gin.H{"shuttle": existing})
}

func (sc *ShuttleController) DeleteShuttle(c *gin.Context) {
	if !sc.store.DeleteShuttle(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shuttle not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shuttle deleted"})
}
