package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"starblog/internal/domain"
	"starblog/internal/testdb"
)

type fixture struct {
	db        *gorm.DB
	users     *UserRepository
	people    *CatalogRepository[domain.People]
	planets   *CatalogRepository[domain.Planet]
	vehicles  *CatalogRepository[domain.Vehicle]
	favorites *FavoriteRepository

	user    domain.User
	person  domain.People
	planet  domain.Planet
	vehicle domain.Vehicle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	f := &fixture{
		db:        db,
		users:     NewUserRepository(db),
		people:    NewPeopleRepository(db),
		planets:   NewPlanetRepository(db),
		vehicles:  NewVehicleRepository(db),
		favorites: NewFavoriteRepository(db),
	}

	ctx := context.Background()
	f.user = domain.User{Email: "han@falcon.io", Password: "kessel12", IsActive: true, Name: "Han Solo"}
	require.NoError(t, f.users.Create(ctx, &f.user))

	f.person = domain.People{Name: "Chewbacca", Mass: 112, Height: 228, HairColor: "brown", SkinColor: "unknown", EyeColor: "blue", BirthYear: "200BBY", Gender: "male"}
	require.NoError(t, f.people.Create(ctx, &f.person))

	f.planet = domain.Planet{Name: "Kashyyyk", Diameter: 12765, RotationPeriod: 26, OrbitalPeriod: 381, Gravity: 1, Population: 45000000, Climate: "tropical", Terrain: "jungle, forests", SurfaceWater: "60"}
	require.NoError(t, f.planets.Create(ctx, &f.planet))

	f.vehicle = domain.Vehicle{Name: "Snowspeeder", Model: "t-47 airspeeder", Manufacturer: "Incom corporation", CostInCredits: 0, Length: 4, Crew: 2, Passengers: 0}
	require.NoError(t, f.vehicles.Create(ctx, &f.vehicle))

	return f
}

func countFavorites(t *testing.T, db *gorm.DB, kind domain.FavoriteKind) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(favoriteModel(kind)).Count(&n).Error)
	return n
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	dup := domain.User{Email: f.user.Email, Password: "x", IsActive: true, Name: "Other"}
	err := f.users.Create(context.Background(), &dup)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_GetByIDMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UpdateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.UpdateName(ctx, f.user.ID, "Captain Solo")
	require.NoError(t, err)
	assert.Equal(t, "Captain Solo", u.Name)
	assert.Equal(t, f.user.Email, u.Email)

	_, err = f.users.UpdateName(ctx, 9999, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_DeleteRemovesFavorites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.favorites.Add(ctx, domain.KindPeople, f.user.ID, f.person.ID)
	require.NoError(t, err)
	_, err = f.favorites.Add(ctx, domain.KindPlanet, f.user.ID, f.planet.ID)
	require.NoError(t, err)
	_, err = f.favorites.Add(ctx, domain.KindVehicle, f.user.ID, f.vehicle.ID)
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(ctx, f.user.ID))

	for _, kind := range domain.Kinds {
		assert.Zero(t, countFavorites(t, f.db, kind), kind)
	}
	exists, err := f.users.Exists(ctx, f.user.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, f.users.Delete(ctx, f.user.ID), ErrNotFound)
}

func TestCatalogRepository_RenameAndDuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.planets.UpdateName(ctx, f.planet.ID, "Wookiee Planet C")
	require.NoError(t, err)
	assert.Equal(t, "Wookiee Planet C", p.Name)

	got, err := f.planets.GetByID(ctx, f.planet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wookiee Planet C", got.Name)
	assert.Equal(t, f.planet.Population, got.Population)

	other := domain.Planet{Name: "Endor", Diameter: 4900, Climate: "temperate", Terrain: "forests", SurfaceWater: "8"}
	require.NoError(t, f.planets.Create(ctx, &other))

	_, err = f.planets.UpdateName(ctx, other.ID, "Wookiee Planet C")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCatalogRepository_DeleteRemovesFavorites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.favorites.Add(ctx, domain.KindVehicle, f.user.ID, f.vehicle.ID)
	require.NoError(t, err)
	_, err = f.favorites.Add(ctx, domain.KindPeople, f.user.ID, f.person.ID)
	require.NoError(t, err)

	require.NoError(t, f.vehicles.Delete(ctx, f.vehicle.ID))

	assert.Zero(t, countFavorites(t, f.db, domain.KindVehicle))
	assert.EqualValues(t, 1, countFavorites(t, f.db, domain.KindPeople))

	_, err = f.vehicles.GetByID(ctx, f.vehicle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.vehicles.Delete(ctx, f.vehicle.ID), ErrNotFound)
}

func TestFavoriteRepository_AddLoadsRelations(t *testing.T) {
	f := newFixture(t)

	fav, err := f.favorites.Add(context.Background(), domain.KindPeople, f.user.ID, f.person.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.KindPeople, fav.Kind)
	assert.Equal(t, f.person.ID, fav.RefID)
	require.NotNil(t, fav.User)
	assert.Equal(t, "Han Solo", fav.User.Name)
	require.NotNil(t, fav.People)
	assert.Equal(t, "Chewbacca", fav.RefName())
	assert.Nil(t, fav.Planet)
	assert.Nil(t, fav.Vehicle)
}

func TestFavoriteRepository_AddDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.favorites.Add(ctx, domain.KindPlanet, f.user.ID, f.planet.ID)
	require.NoError(t, err)

	_, err = f.favorites.Add(ctx, domain.KindPlanet, f.user.ID, f.planet.ID)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.EqualValues(t, 1, countFavorites(t, f.db, domain.KindPlanet))
}

func TestFavoriteRepository_Remove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.favorites.Add(ctx, domain.KindVehicle, f.user.ID, f.vehicle.ID)
	require.NoError(t, err)

	require.NoError(t, f.favorites.Remove(ctx, domain.KindVehicle, f.user.ID, f.vehicle.ID))
	assert.ErrorIs(t, f.favorites.Remove(ctx, domain.KindVehicle, f.user.ID, f.vehicle.ID), ErrNotFound)
}

func TestFavoriteRepository_ListByUserOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Insert in reverse kind order; listing still groups people, planets, vehicles.
	_, err := f.favorites.Add(ctx, domain.KindVehicle, f.user.ID, f.vehicle.ID)
	require.NoError(t, err)
	_, err = f.favorites.Add(ctx, domain.KindPlanet, f.user.ID, f.planet.ID)
	require.NoError(t, err)
	_, err = f.favorites.Add(ctx, domain.KindPeople, f.user.ID, f.person.ID)
	require.NoError(t, err)

	favs, err := f.favorites.ListByUser(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 3)
	assert.Equal(t, domain.KindPeople, favs[0].Kind)
	assert.Equal(t, domain.KindPlanet, favs[1].Kind)
	assert.Equal(t, domain.KindVehicle, favs[2].Kind)
	for _, fav := range favs {
		assert.True(t, fav.Loaded(), fav.Kind)
	}

	none, err := f.favorites.ListByUser(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFavoriteRepository_OrphansSkippedAndPruned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.favorites.Add(ctx, domain.KindPeople, f.user.ID, f.person.ID)
	require.NoError(t, err)
	_, err = f.favorites.Add(ctx, domain.KindPlanet, f.user.ID, f.planet.ID)
	require.NoError(t, err)

	// Remove the planet behind the repository's back, leaving an orphan row.
	require.NoError(t, f.db.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, f.db.Delete(&domain.Planet{}, f.planet.ID).Error)

	favs, err := f.favorites.ListByUser(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, domain.KindPeople, favs[0].Kind)

	removed, err := f.favorites.PruneOrphans(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed[domain.KindPeople])
	assert.EqualValues(t, 1, removed[domain.KindPlanet])
	assert.EqualValues(t, 0, removed[domain.KindVehicle])
	assert.Zero(t, countFavorites(t, f.db, domain.KindPlanet))
	assert.EqualValues(t, 1, countFavorites(t, f.db, domain.KindPeople))
}
