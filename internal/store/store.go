// Package store holds the in-memory collections behind the booking API.
// Everything is seeded from static sample records at startup; a process
// restart resets the data. The mutex exists because the HTTP surface is
// concurrent, unlike the single event loop the data model was written for.
package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"campus_hop/internal/models"
)

type Store struct {
	mu       sync.RWMutex
	users    []models.User
	shuttles []models.Shuttle
	routes   []models.Route
	bookings []models.Booking
	log      *logrus.Logger
}

// New builds a store around the given seed collections. The slices are owned
// by the store after the call.
func New(seed SeedData, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{
		users:    seed.Users,
		shuttles: seed.Shuttles,
		routes:   seed.Routes,
		bookings: seed.Bookings,
		log:      log,
	}
}

// newID generates a collision-safe identifier with a readable prefix,
// e.g. "booking_9f1c…". Seed records keep their original short ids.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// ---- users ----

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// AddUser appends a new user record and returns it with a generated id.
// The caller must have checked email uniqueness first; the store repeats
// the check and refuses duplicates.
func (s *Store) AddUser(u models.User) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, false
		}
	}
	if u.ID == "" {
		u.ID = newID("user")
	}
	s.users = append(s.users, u)
	s.log.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("User saved to store")
	return u, true
}

// ProfileUpdate carries the merge-updatable profile fields. Nil means
// "leave unchanged".
type ProfileUpdate struct {
	Name         *string
	StudentID    *string
	ProfileImage *string
}

// UpdateUser merges the update into the backing list entry and returns the
// resulting record.
func (s *Store) UpdateUser(id string, upd ProfileUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.users[i].Name = *upd.Name
		}
		if upd.StudentID != nil {
			s.users[i].StudentID = *upd.StudentID
		}
		if upd.ProfileImage != nil {
			s.users[i].ProfileImage = *upd.ProfileImage
		}
		s.log.WithField("user_id", id).Info("User profile updated in store")
		return s.users[i], true
	}
	return models.User{}, false
}
