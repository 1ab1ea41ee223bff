package main

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starblog/internal/config"
	"starblog/internal/database"
	"starblog/internal/domain"
	"starblog/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	l := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, database.Options{Silent: true})
	if err != nil {
		l.Fatal().Err(err).Msg("DB connection failed")
	}

	l.Info().Msg("running AutoMigrate")
	if err := database.Migrate(db); err != nil {
		l.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	// Rows that already exist (by unique name / email) are left untouched.
	seeds := []struct {
		name string
		rows any
	}{
		{"people", &people},
		{"planets", &planets},
		{"vehicles", &vehicles},
	}
	for _, s := range seeds {
		res := insertMissing(db, s.rows, "name")
		if res.Error != nil {
			l.Fatal().Err(res.Error).Str("table", s.name).Msg("seed failed")
		}
		l.Info().Str("table", s.name).Int64("inserted", res.RowsAffected).Msg("seeded")
	}

	demo := &domain.User{
		Email:    "luke@rebellion.org",
		Password: "usetheforce",
		IsActive: true,
		Name:     "Luke Skywalker",
	}
	if res := insertMissing(db, demo, "email"); res.Error != nil {
		l.Fatal().Err(res.Error).Msg("seed demo user failed")
	}
	l.Info().Str("email", demo.Email).Msg("demo user ready")
}

func insertMissing(db *gorm.DB, rows any, uniqueColumn string) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: uniqueColumn}},
		DoNothing: true,
	}).Create(rows)
}

var people = []domain.People{
	{Name: "Luke Skywalker", Mass: 77, Height: 172, HairColor: "blond", SkinColor: "fair", EyeColor: "blue", BirthYear: "19BBY", Gender: "male"},
	{Name: "C-3PO", Mass: 75, Height: 167, HairColor: "n/a", SkinColor: "gold", EyeColor: "yellow", BirthYear: "112BBY", Gender: "n/a"},
	{Name: "Darth Vader", Mass: 136, Height: 202, HairColor: "none", SkinColor: "white", EyeColor: "yellow", BirthYear: "41.9BBY", Gender: "male"},
	{Name: "Leia Organa", Mass: 49, Height: 150, HairColor: "brown", SkinColor: "light", EyeColor: "brown", BirthYear: "19BBY", Gender: "female"},
	{Name: "Obi-Wan Kenobi", Mass: 77, Height: 182, HairColor: "auburn, white", SkinColor: "fair", EyeColor: "blue-gray", BirthYear: "57BBY", Gender: "male"},
}

var planets = []domain.Planet{
	{Name: "Tatooine", Diameter: 10465, RotationPeriod: 23, OrbitalPeriod: 304, Gravity: 1, Population: 200000, Climate: "arid", Terrain: "desert", SurfaceWater: "1"},
	{Name: "Alderaan", Diameter: 12500, RotationPeriod: 24, OrbitalPeriod: 364, Gravity: 1, Population: 2000000000, Climate: "temperate", Terrain: "grasslands, mountains", SurfaceWater: "40"},
	{Name: "Hoth", Diameter: 7200, RotationPeriod: 23, OrbitalPeriod: 549, Gravity: 1, Population: 0, Climate: "frozen", Terrain: "tundra, ice caves", SurfaceWater: "100"},
	{Name: "Dagobah", Diameter: 8900, RotationPeriod: 23, OrbitalPeriod: 341, Gravity: 1, Population: 0, Climate: "murky", Terrain: "swamp, jungles", SurfaceWater: "8"},
}

var vehicles = []domain.Vehicle{
	{Name: "Sand Crawler", Model: "Digger Crawler", Manufacturer: "Corellia Mining Corporation", CostInCredits: 150000, Length: 36, Crew: 46, Passengers: 30},
	{Name: "T-16 skyhopper", Model: "T-16 skyhopper", Manufacturer: "Incom Corporation", CostInCredits: 14500, Length: 10, Crew: 1, Passengers: 1},
	{Name: "X-34 landspeeder", Model: "X-34 landspeeder", Manufacturer: "SoroSuub Corporation", CostInCredits: 10550, Length: 3, Crew: 1, Passengers: 1},
	{Name: "TIE/LN starfighter", Model: "Twin Ion Engine/Ln Starfighter", Manufacturer: "Sienar Fleet Systems", CostInCredits: 0, Length: 6, Crew: 1, Passengers: 0},
}
