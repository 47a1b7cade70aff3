package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campus_hop/internal/models"
	"campus_hop/internal/store"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

// RouteController serves the campus routes. Responses carry the route's
// polyline as a GeoJSON string alongside the stop list so a map widget can
// draw it without joining stops itself.
type RouteController struct {
	store *store.Store
}

func NewRouteController(s *store.Store) *RouteController {
	return &RouteController{store: s}
}

// RouteResponse mirrors models.Route plus the derived GeoJSON geometry.
type RouteResponse struct {
	models.Route
	Geometry string `json:"geometry,omitempty"`
}

func toRouteResponse(route models.Route) RouteResponse {
	jsonGeom, err := routeGeoJSON(route)
	if err != nil {
		logrus.WithError(err).WithField("route_id", route.ID).Warn("Failed to encode route geometry")
	}
	return RouteResponse{Route: route, Geometry: jsonGeom}
}

// routeGeoJSON builds a LineString through the route's stops in traversal
// order and encodes it as GeoJSON. Routes with fewer than two stops have no
// drawable polyline and return "".
func routeGeoJSON(route models.Route) (string, error) {
	if len(route.Stops) < 2 {
		return "", nil
	}
	coords := make([]geom.Coord, 0, len(route.Stops))
	for _, s := range route.Stops {
		coords = append(coords, geom.Coord{s.Location.Lng, s.Location.Lat})
	}
	line := geom.NewLineString(geom.XY)
	if _, err := line.SetCoords(coords); err != nil {
		return "", err
	}
	b, err := gjson.Marshal(line)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (rc *RouteController) ListRoutes(c *gin.Context) {
	routes := rc.store.ListRoutes()
	routeResponses := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		routeResponses = append(routeResponses, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"routes": routeResponses})
}

func (rc *RouteController) GetRoute(c *gin.Context) {
	route, found := rc.store.GetRoute(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": toRouteResponse(route)})
}

type routeInput struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Color         string `json:"color"`
	EstimatedTime int    `json:"estimated_time"`
	Active        *bool  `json:"active"`
	Stops         []struct {
		Name                   string        `json:"name" binding:"required"`
		Location               models.LatLng `json:"location"`
		Order                  int           `json:"order"`
		EstimatedTimeFromStart int           `json:"estimated_time_from_start"`
	} `json:"stops"`
}

func (in routeInput) toRoute() models.Route {
	route := models.Route{
		Name:          in.Name,
		Description:   in.Description,
		Color:         in.Color,
		EstimatedTime: in.EstimatedTime,
		Active:        true,
	}
	if in.Active != nil {
		route.Active = *in.Active
	}
	for _, s := range in.Stops {
		route.Stops = append(route.Stops, models.Stop{
			Name:                   s.Name,
			Location:               s.Location,
			Order:                  s.Order,
			EstimatedTimeFromStart: s.EstimatedTimeFromStart,
		})
	}
	return route
}

// CreateRoute adds a route with its stops. Admin use only.
func (rc *RouteController) CreateRoute(c *gin.Context) {
	var input routeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	route := rc.store.AddRoute(input.toRoute())
	c.JSON(http.StatusCreated, gin.H{"route": toRouteResponse(route)})
}

// UpdateRoute replaces a route's metadata and stop list wholesale.
func (rc *RouteController) UpdateRoute(c *gin.Context) {
	id := c.Param("id")
	if _, found := rc.store.GetRoute(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var input routeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route := input.toRoute()
	route.ID = id
	rc.store.UpdateRoute(route)

	updated, _ := rc.store.GetRoute(id)
	c.JSON(http.StatusOK, gin.H{"route": toRouteResponse(updated)})
}

func (rc *RouteController) DeleteRoute(c *gin.Context) {
	if !rc.store.DeleteRoute(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully"})
}
