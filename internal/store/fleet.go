package store

import (
	"github.com/sirupsen/logrus"

	"campus_hop/internal/models"
)

// ---- shuttles ----

func (s *Store) ListShuttles() []models.Shuttle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Shuttle, len(s.shuttles))
	copy(out, s.shuttles)
	return out
}

func (s *Store) GetShuttle(id string) (models.Shuttle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shuttles {
		if sh.ID == id {
			return sh, true
		}
	}
	return models.Shuttle{}, false
}

// FirstActiveShuttle returns the first shuttle with status "active".
// The reservation flow assigns it as-is: no capacity check and no
// route-to-shuttle pairing.
func (s *Store) FirstActiveShuttle() (models.Shuttle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shuttles {
		if sh.Status == models.ShuttleActive {
			return sh, true
		}
	}
	return models.Shuttle{}, false
}

func (s *Store) AddShuttle(sh models.Shuttle) models.Shuttle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sh.ID == "" {
		sh.ID = newID("shuttle")
	}
	s.shuttles = append(s.shuttles, sh)
	s.log.WithFields(logrus.Fields{"shuttle_id": sh.ID, "name": sh.Name}).Info("Shuttle saved to store")
	return sh
}

// UpdateShuttle replaces the shuttle with the same id wholesale.
func (s *Store) UpdateShuttle(sh models.Shuttle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shuttles {
		if s.shuttles[i].ID == sh.ID {
			s.shuttles[i] = sh
			s.log.WithField("shuttle_id", sh.ID).Info("Shuttle updated in store")
			return true
		}
	}
	return false
}

// SetShuttleLocation records a live position update for one shuttle.
func (s *Store) SetShuttleLocation(id string, loc models.LatLng) (models.Shuttle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shuttles {
		if s.shuttles[i].ID == id {
			s.shuttles[i].CurrentLocation = &loc
			return s.shuttles[i], true
		}
	}
	return models.Shuttle{}, false
}

func (s *Store) DeleteShuttle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shuttles {
		if s.shuttles[i].ID == id {
			s.shuttles = append(s.shuttles[:i], s.shuttles[i+1:]...)
			s.log.WithField("shuttle_id", id).Info("Shuttle deleted from store")
			return true
		}
	}
	return false
}

// ---- routes ----

func (s *Store) ListRoutes() []models.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Route, len(s.routes))
	copy(out, s.routes)
	return out
}

func (s *Store) GetRoute(id string) (models.Route, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.routes {
		if r.ID == id {
			return r, true
		}
	}
	return models.Route{}, false
}

// AddRoute appends a route, assigning ids to the route and any stops that
// lack one.
func (s *Store) AddRoute(r models.Route) models.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = newID("route")
	}
	for i := range r.Stops {
		if r.Stops[i].ID == "" {
			r.Stops[i].ID = newID("stop")
		}
	}
	s.routes = append(s.routes, r)
	s.log.WithFields(logrus.Fields{"route_id": r.ID, "name": r.Name}).Info("Route saved to store")
	return r
}

// UpdateRoute replaces the route with the same id wholesale, stops included.
func (s *Store) UpdateRoute(r models.Route) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.routes {
		if s.routes[i].ID == r.ID {
			for j := range r.Stops {
				if r.Stops[j].ID == "" {
					r.Stops[j].ID = newID("stop")
				}
			}
			s.routes[i] = r
			s.log.WithField("route_id", r.ID).Info("Route updated in store")
			return true
		}
	}
	return false
}

func (s *Store) DeleteRoute(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.routes {
		if s.routes[i].ID == id {
			s.routes = append(s.routes[:i], s.routes[i+1:]...)
			s.log.WithField("route_id", id).Info("Route deleted from store")
			return true
		}
	}
	return false
}
