package favorite

import (
	"time"

	"starblog/internal/domain"
)

// AddRequest carries user_id plus the id field matching the route's kind.
type AddRequest struct {
	UserID    int64 `json:"user_id" validate:"required"`
	PeopleID  int64 `json:"people_id"`
	PlanetID  int64 `json:"planet_id"`
	VehicleID int64 `json:"vehicle_id"`
}

func (r AddRequest) refID(kind domain.FavoriteKind) int64 {
	switch kind {
	case domain.KindPeople:
		return r.PeopleID
	case domain.KindPlanet:
		return r.PlanetID
	case domain.KindVehicle:
		return r.VehicleID
	}
	return 0
}

type ListRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// Response is one favorite with the user and the catalog entry inlined.
// Only the fields of the favorite's own kind are set.
type Response struct {
	ID        int64               `json:"id"`
	Kind      domain.FavoriteKind `json:"kind"`
	UserID    int64               `json:"user_id"`
	UserName  string              `json:"user_name"`
	User      *domain.User        `json:"user"`
	CreatedAt time.Time           `json:"created_at"`

	PeopleID   int64          `json:"people_id,omitempty"`
	PeopleName string         `json:"people_name,omitempty"`
	People     *domain.People `json:"people,omitempty"`

	PlanetID   int64          `json:"planet_id,omitempty"`
	PlanetName string         `json:"planet_name,omitempty"`
	Planet     *domain.Planet `json:"planet,omitempty"`

	VehicleID   int64           `json:"vehicle_id,omitempty"`
	VehicleName string          `json:"vehicle_name,omitempty"`
	Vehicle     *domain.Vehicle `json:"vehicle,omitempty"`
}

func ToResponse(f *domain.Favorite) Response {
	resp := Response{
		ID:        f.ID,
		Kind:      f.Kind,
		UserID:    f.UserID,
		User:      f.User,
		CreatedAt: f.CreatedAt,
	}
	if f.User != nil {
		resp.UserName = f.User.Name
	}

	switch f.Kind {
	case domain.KindPeople:
		resp.PeopleID, resp.PeopleName, resp.People = f.RefID, f.RefName(), f.People
	case domain.KindPlanet:
		resp.PlanetID, resp.PlanetName, resp.Planet = f.RefID, f.RefName(), f.Planet
	case domain.KindVehicle:
		resp.VehicleID, resp.VehicleName, resp.Vehicle = f.RefID, f.RefName(), f.Vehicle
	}
	return resp
}

func ToResponses(favs []domain.Favorite) []Response {
	out := make([]Response, len(favs))
	for i := range favs {
		out[i] = ToResponse(&favs[i])
	}
	return out
}
