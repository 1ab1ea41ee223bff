package domain

// People, Planet and Vehicle are read-mostly catalog entries. Only Name is
// editable once a row exists.

type People struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Mass      int    `json:"mass" gorm:"not null"`
	Height    int    `json:"height" gorm:"not null"`
	HairColor string `json:"hair_color" gorm:"size:50;not null"`
	SkinColor string `json:"skin_color" gorm:"size:50;not null"`
	EyeColor  string `json:"eye_color" gorm:"size:50;not null"`
	BirthYear string `json:"birth_year" gorm:"size:50;not null"`
	Gender    string `json:"gender" gorm:"size:50;not null"`
}

func (People) TableName() string {
	return "people"
}

type Planet struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Diameter       int    `json:"diameter" gorm:"not null"`
	RotationPeriod int    `json:"rotation_period" gorm:"not null"`
	OrbitalPeriod  int    `json:"orbital_period" gorm:"not null"`
	Gravity        int    `json:"gravity" gorm:"not null"`
	Population     int64  `json:"population" gorm:"not null"`
	Climate        string `json:"climate" gorm:"size:50;not null"`
	Terrain        string `json:"terrain" gorm:"size:50;not null"`
	SurfaceWater   string `json:"surface_water" gorm:"size:50;not null"`
}

func (Planet) TableName() string {
	return "planets"
}

type Vehicle struct {
	ID            int64  `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"size:250;not null;uniqueIndex"`
	Model         string `json:"model" gorm:"size:50;not null"`
	Manufacturer  string `json:"manufacturer" gorm:"size:100;not null"`
	CostInCredits int64  `json:"cost_in_credits" gorm:"not null"`
	Length        int    `json:"length" gorm:"not null"`
	Crew          int    `json:"crew" gorm:"not null"`
	Passengers    int    `json:"passengers" gorm:"not null"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// CatalogEntry is satisfied by every catalog model.
type CatalogEntry interface {
	People | Planet | Vehicle
}
