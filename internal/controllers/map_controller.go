package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-geom"

	"campus_hop/internal/models"
	"campus_hop/internal/store"
)

// Campus center, the map's anchor when nothing else is placeable.
var campusCenter = models.LatLng{Lat: 28.4513, Lng: 77.5826}

// MapController assembles the live-map payload: shuttle markers, route
// overlays and a fitted viewport. The client-side widget only has to draw.
type MapController struct {
	store *store.Store
}

func NewMapController(s *store.Store) *MapController {
	return &MapController{store: s}
}

// ShuttleMarker is one live shuttle position on the map.
type ShuttleMarker struct {
	ShuttleID string        `json:"shuttle_id"`
	Name      string        `json:"name"`
	Location  models.LatLng `json:"location"`
}

// RouteOverlay is one route's stops plus its polyline and display color.
type RouteOverlay struct {
	RouteID  string        `json:"route_id"`
	Name     string        `json:"name"`
	Color    string        `json:"color"`
	Stops    []models.Stop `json:"stops"`
	Polyline string        `json:"polyline,omitempty"` // GeoJSON LineString
}

// Viewport is the bounding box the widget should fit, southwest/northeast.
type Viewport struct {
	SouthWest models.LatLng `json:"south_west"`
	NorthEast models.LatLng `json:"north_east"`
	Center    models.LatLng `json:"center"`
}

// Snapshot returns everything the map needs in one call. With ?route=<id>
// the overlays and viewport narrow to that route, matching the map view's
// selected-route filter; otherwise the viewport fits the union of all stops
// and shuttle positions.
func (mc *MapController) Snapshot(c *gin.Context) {
	selected := c.Query("route")

	var markers []ShuttleMarker
	for _, sh := range mc.store.ListShuttles() {
		if sh.Status != models.ShuttleActive || sh.CurrentLocation == nil {
			continue
		}
		markers = append(markers, ShuttleMarker{
			ShuttleID: sh.ID,
			Name:      sh.Name,
			Location:  *sh.CurrentLocation,
		})
	}

	var overlays []RouteOverlay
	for _, r := range mc.store.ListRoutes() {
		if !r.Active {
			continue
		}
		if selected != "" && r.ID != selected {
			continue
		}
		polyline, _ := routeGeoJSON(r)
		overlays = append(overlays, RouteOverlay{
			RouteID:  r.ID,
			Name:     r.Name,
			Color:    r.Color,
			Stops:    r.Stops,
			Polyline: polyline,
		})
	}

	if selected != "" && len(overlays) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shuttles": markers,
		"routes":   overlays,
		"viewport": fitViewport(overlays, markers, selected != ""),
	})
}

// fitViewport computes the bounds to fit: the selected route's stops when a
// filter is active, otherwise all stops plus shuttle markers. An empty
// bounds falls back to the campus center.
func fitViewport(overlays []RouteOverlay, markers []ShuttleMarker, selectedOnly bool) Viewport {
	bounds := geom.NewBounds(geom.XY)
	for _, o := range overlays {
		for _, s := range o.Stops {
			bounds.Extend(geom.NewPointFlat(geom.XY, []float64{s.Location.Lng, s.Location.Lat}))
		}
	}
	if !selectedOnly {
		for _, m := range markers {
			bounds.Extend(geom.NewPointFlat(geom.XY, []float64{m.Location.Lng, m.Location.Lat}))
		}
	}

	if bounds.IsEmpty() {
		return Viewport{SouthWest: campusCenter, NorthEast: campusCenter, Center: campusCenter}
	}

	sw := models.LatLng{Lat: bounds.Min(1), Lng: bounds.Min(0)}
	ne := models.LatLng{Lat: bounds.Max(1), Lng: bounds.Max(0)}
	return Viewport{
		SouthWest: sw,
		NorthEast: ne,
		Center:    models.LatLng{Lat: (sw.Lat + ne.Lat) / 2, Lng: (sw.Lng + ne.Lng) / 2},
	}
}
