// internal/models/shuttle.go
package models

const (
	ShuttleActive      = "active"
	ShuttleInactive    = "inactive"
	ShuttleMaintenance = "maintenance"
)

// LatLng is a WGS84 coordinate pair shared by shuttles and stops.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Shuttle struct {
	ID              string  `json:"id"`
	Name            string  `json:"name" binding:"required"`
	Capacity        int     `json:"capacity"`
	LicensePlate    string  `json:"license_plate,omitempty"`
	CurrentLocation *LatLng `json:"current_location,omitempty"`
	Status          string  `json:"status"` // "active", "inactive", "maintenance"
	DriverName      string  `json:"driver_name"`
	DriverContact   string  `json:"driver_contact"`
}

// ValidShuttleStatus reports whether s is one of the known shuttle states.
func ValidShuttleStatus(s string) bool {
	switch s {
	case ShuttleActive, ShuttleInactive, ShuttleMaintenance:
		return true
	}
	return false
}
