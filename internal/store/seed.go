package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"campus_hop/internal/models"
)

// DemoPassword is the shared password of the seeded demo accounts.
const DemoPassword = "password"

// SeedData is the static sample state the store starts from.
type SeedData struct {
	Users    []models.User
	Shuttles []models.Shuttle
	Routes   []models.Route
	Bookings []models.Booking
}

// Seed builds the sample campus data set: two demo users, three shuttles,
// two routes and one existing booking for the student account.
func Seed() SeedData {
	now := time.Now()
	// MinCost keeps startup fast; these are demo accounts.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic("seed: hashing demo password: " + err.Error())
	}

	users := []models.User{
		{
			ID:           "1",
			Name:         "Admin User",
			Email:        "admin@bennett.edu.in",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			ProfileImage: "/placeholder.svg",
			CreatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:           "2",
			Name:         "Student User",
			Email:        "student@bennett.edu.in",
			PasswordHash: string(hash),
			Role:         models.RoleUser,
			StudentID:    "BU20210001",
			ProfileImage: "/placeholder.svg",
			CreatedAt:    now.Add(-time.Hour),
		},
	}

	shuttles := []models.Shuttle{
		{
			ID:              "shuttle_1",
			Name:            "Shuttle A",
			Capacity:        20,
			LicensePlate:    "HR-01-A-1234",
			CurrentLocation: &models.LatLng{Lat: 28.4520, Lng: 77.5830},
			Status:          models.ShuttleActive,
			DriverName:      "Rajesh Kumar",
			DriverContact:   "+91 9876543210",
		},
		{
			ID:              "shuttle_2",
			Name:            "Shuttle B",
			Capacity:        15,
			LicensePlate:    "HR-01-B-5678",
			CurrentLocation: &models.LatLng{Lat: 28.4580, Lng: 77.5930},
			Status:          models.ShuttleActive,
			DriverName:      "Amit Singh",
			DriverContact:   "+91 9876543211",
		},
		{
			ID:            "shuttle_3",
			Name:          "Shuttle C",
			Capacity:      25,
			LicensePlate:  "HR-01-C-9012",
			Status:        models.ShuttleMaintenance,
			DriverName:    "Suresh Patel",
			DriverContact: "+91 9876543212",
		},
	}

	routes := []models.Route{
		{
			ID:            "route_1",
			Name:          "Main Campus Loop",
			Description:   "Circles around the main campus buildings",
			Color:         "#3B82F6",
			EstimatedTime: 15,
			Active:        true,
			Stops: []models.Stop{
				{ID: "stop_1", Name: "Main Gate", Location: models.LatLng{Lat: 28.4513, Lng: 77.5826}, Order: 1, EstimatedTimeFromStart: 0},
				{ID: "stop_2", Name: "Academic Block", Location: models.LatLng{Lat: 28.4520, Lng: 77.5835}, Order: 2, EstimatedTimeFromStart: 3},
				{ID: "stop_3", Name: "Hostel Complex", Location: models.LatLng{Lat: 28.4530, Lng: 77.5840}, Order: 3, EstimatedTimeFromStart: 7},
				{ID: "stop_4", Name: "Sports Center", Location: models.LatLng{Lat: 28.4525, Lng: 77.5850}, Order: 4, EstimatedTimeFromStart: 10},
				{ID: "stop_5", Name: "Main Gate", Location: models.LatLng{Lat: 28.4513, Lng: 77.5826}, Order: 5, EstimatedTimeFromStart: 15},
			},
		},
		{
			ID:            "route_2",
			Name:          "City Connector",
			Description:   "Connects campus to major city locations",
			Color:         "#0D9488",
			EstimatedTime: 30,
			Active:        true,
			Stops: []models.Stop{
				{ID: "stop_6", Name: "Main Gate", Location: models.LatLng{Lat: 28.4513, Lng: 77.5826}, Order: 1, EstimatedTimeFromStart: 0},
				{ID: "stop_7", Name: "Metro Station", Location: models.LatLng{Lat: 28.4570, Lng: 77.5920}, Order: 2, EstimatedTimeFromStart: 10},
				{ID: "stop_8", Name: "Shopping Mall", Location: models.LatLng{Lat: 28.4600, Lng: 77.5950}, Order: 3, EstimatedTimeFromStart: 15},
				{ID: "stop_9", Name: "City Center", Location: models.LatLng{Lat: 28.4630, Lng: 77.5980}, Order: 4, EstimatedTimeFromStart: 20},
				{ID: "stop_10", Name: "Main Gate", Location: models.LatLng{Lat: 28.4513, Lng: 77.5826}, Order: 5, EstimatedTimeFromStart: 30},
			},
		},
	}

	bookings := []models.Booking{
		{
			ID:              "booking_1",
			UserID:          "2",
			UserName:        "Student User",
			UserEmail:       "student@bennett.edu.in",
			RouteID:         "route_1",
			RouteName:       "Main Campus Loop",
			ShuttleID:       "shuttle_1",
			ShuttleName:     "Shuttle A",
			PickupStopID:    "stop_1",
			PickupStopName:  "Main Gate",
			DropoffStopID:   "stop_3",
			DropoffStopName: "Hostel Complex",
			BookingTime:     now.Add(-time.Hour),
			ScheduledTime:   now.Add(30 * time.Minute),
			Status:          models.BookingConfirmed,
			CreatedAt:       now.Add(-time.Hour),
		},
	}

	return SeedData{Users: users, Shuttles: shuttles, Routes: routes, Bookings: bookings}
}
