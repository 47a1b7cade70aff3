package models

// Route represents a shuttle service path around campus.
// Each route has an ordered list of stops; stop order matches
// EstimatedTimeFromStart (minutes from the route's first stop).
type Route struct {
	ID            string `json:"id"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Stops         []Stop `json:"stops"`
	Color         string `json:"color"` // display color for the map polyline
	EstimatedTime int    `json:"estimated_time"` // total duration in minutes
	Active        bool   `json:"active"`
}

// Stop is a named waypoint belonging to exactly one route.
type Stop struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Location               LatLng `json:"location"`
	Order                  int    `json:"order"` // 1-based position along the route
	EstimatedTimeFromStart int    `json:"estimated_time_from_start"`
}

// FindStop returns the stop with the given id within the route.
func (r Route) FindStop(stopID string) (Stop, bool) {
	for _, s := range r.Stops {
		if s.ID == stopID {
			return s, true
		}
	}
	return Stop{}, false
}
