package domain

import "time"

// FavoriteKind names one of the three catalog tables a favorite can point at.
type FavoriteKind string

const (
	KindPeople  FavoriteKind = "people"
	KindPlanet  FavoriteKind = "planet"
	KindVehicle FavoriteKind = "vehicle"
)

// Kinds lists favorite kinds in the order they are reported to clients.
var Kinds = []FavoriteKind{KindPeople, KindPlanet, KindVehicle}

func ParseFavoriteKind(s string) (FavoriteKind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// RefColumn is the join-table column holding the catalog id, e.g. "people_id".
func (k FavoriteKind) RefColumn() string {
	return string(k) + "_id"
}

// FavoritePeople links a user to a person. (user_id, people_id) is unique.
type FavoritePeople struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorite_people_user_ref"`
	PeopleID  int64     `json:"people_id" gorm:"not null;index;uniqueIndex:idx_favorite_people_user_ref"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	People *People `json:"people,omitempty" gorm:"foreignKey:PeopleID"`
}

func (FavoritePeople) TableName() string {
	return "favorite_people"
}

// FavoritePlanet links a user to a planet. (user_id, planet_id) is unique.
type FavoritePlanet struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorite_planet_user_ref"`
	PlanetID  int64     `json:"planet_id" gorm:"not null;index;uniqueIndex:idx_favorite_planet_user_ref"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Planet *Planet `json:"planet,omitempty" gorm:"foreignKey:PlanetID"`
}

func (FavoritePlanet) TableName() string {
	return "favorite_planets"
}

// FavoriteVehicle links a user to a vehicle. (user_id, vehicle_id) is unique.
type FavoriteVehicle struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorite_vehicle_user_ref"`
	VehicleID int64     `json:"vehicle_id" gorm:"not null;index;uniqueIndex:idx_favorite_vehicle_user_ref"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

func (FavoriteVehicle) TableName() string {
	return "favorite_vehicles"
}

// Models returns every persisted model, in migration order.
func Models() []any {
	return []any{
		&User{},
		&People{},
		&Planet{},
		&Vehicle{},
		&FavoritePeople{},
		&FavoritePlanet{},
		&FavoriteVehicle{},
	}
}

// Favorite is the kind-independent view of one favorite row with its user and
// catalog entry loaded. Exactly one of People, Planet, Vehicle is set.
type Favorite struct {
	ID        int64
	Kind      FavoriteKind
	UserID    int64
	RefID     int64
	CreatedAt time.Time

	User    *User
	People  *People
	Planet  *Planet
	Vehicle *Vehicle
}

// RefName returns the name of the referenced catalog entry.
func (f *Favorite) RefName() string {
	switch {
	case f.People != nil:
		return f.People.Name
	case f.Planet != nil:
		return f.Planet.Name
	case f.Vehicle != nil:
		return f.Vehicle.Name
	}
	return ""
}

func (f *Favorite) Loaded() bool {
	return f.User != nil && (f.People != nil || f.Planet != nil || f.Vehicle != nil)
}

// Noun is the singular, capitalised name used in client messages.
func (k FavoriteKind) Noun() string {
	switch k {
	case KindPeople:
		return "Person"
	case KindPlanet:
		return "Planet"
	case KindVehicle:
		return "Vehicle"
	}
	return string(k)
}
