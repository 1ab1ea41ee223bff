package catalog

import "starblog/internal/domain"

// Creator is a create-request body that converts into a catalog model.
type Creator[T domain.CatalogEntry] interface {
	Model() T
}

// Numeric attributes are pointers so that an explicit 0 counts as present.

type CreatePeopleRequest struct {
	Name      string `json:"name" validate:"required"`
	Mass      *int   `json:"mass" validate:"required"`
	Height    *int   `json:"height" validate:"required"`
	HairColor string `json:"hair_color" validate:"required"`
	SkinColor string `json:"skin_color" validate:"required"`
	EyeColor  string `json:"eye_color" validate:"required"`
	BirthYear string `json:"birth_year" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
}

func (r CreatePeopleRequest) Model() domain.People {
	return domain.People{
		Name:      r.Name,
		Mass:      *r.Mass,
		Height:    *r.Height,
		HairColor: r.HairColor,
		SkinColor: r.SkinColor,
		EyeColor:  r.EyeColor,
		BirthYear: r.BirthYear,
		Gender:    r.Gender,
	}
}

type CreatePlanetRequest struct {
	Name           string `json:"name" validate:"required"`
	Diameter       *int   `json:"diameter" validate:"required"`
	RotationPeriod *int   `json:"rotation_period" validate:"required"`
	OrbitalPeriod  *int   `json:"orbital_period" validate:"required"`
	Gravity        *int   `json:"gravity" validate:"required"`
	Population     *int64 `json:"population" validate:"required"`
	Climate        string `json:"climate" validate:"required"`
	Terrain        string `json:"terrain" validate:"required"`
	SurfaceWater   string `json:"surface_water" validate:"required"`
}

func (r CreatePlanetRequest) Model() domain.Planet {
	return domain.Planet{
		Name:           r.Name,
		Diameter:       *r.Diameter,
		RotationPeriod: *r.RotationPeriod,
		OrbitalPeriod:  *r.OrbitalPeriod,
		Gravity:        *r.Gravity,
		Population:     *r.Population,
		Climate:        r.Climate,
		Terrain:        r.Terrain,
		SurfaceWater:   r.SurfaceWater,
	}
}

type CreateVehicleRequest struct {
	Name          string `json:"name" validate:"required"`
	VehicleModel  string `json:"model" validate:"required"`
	Manufacturer  string `json:"manufacturer" validate:"required"`
	CostInCredits *int64 `json:"cost_in_credits" validate:"required"`
	Length        *int   `json:"length" validate:"required"`
	Crew          *int   `json:"crew" validate:"required"`
	Passengers    *int   `json:"passengers" validate:"required"`
}

func (r CreateVehicleRequest) Model() domain.Vehicle {
	return domain.Vehicle{
		Name:          r.Name,
		Model:         r.VehicleModel,
		Manufacturer:  r.Manufacturer,
		CostInCredits: *r.CostInCredits,
		Length:        *r.Length,
		Crew:          *r.Crew,
		Passengers:    *r.Passengers,
	}
}
