package repository

import (
	"context"
	"fmt"

	"starblog/internal/domain"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// FavoriteRepository stores the three favorite join tables behind one
// kind-parameterised API.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func favoriteModel(kind domain.FavoriteKind) any {
	switch kind {
	case domain.KindPeople:
		return &domain.FavoritePeople{}
	case domain.KindPlanet:
		return &domain.FavoritePlanet{}
	case domain.KindVehicle:
		return &domain.FavoriteVehicle{}
	}
	panic(fmt.Sprintf("unknown favorite kind %q", kind))
}

func catalogModel(kind domain.FavoriteKind) any {
	switch kind {
	case domain.KindPeople:
		return &domain.People{}
	case domain.KindPlanet:
		return &domain.Planet{}
	case domain.KindVehicle:
		return &domain.Vehicle{}
	}
	panic(fmt.Sprintf("unknown favorite kind %q", kind))
}

// relation is the gorm association name of the catalog side of a join row.
func relation(kind domain.FavoriteKind) string {
	switch kind {
	case domain.KindPeople:
		return "People"
	case domain.KindPlanet:
		return "Planet"
	default:
		return "Vehicle"
	}
}

// Add inserts a favorite and returns it with user and catalog entry loaded.
// ErrDuplicate is returned when the pair already exists.
func (r *FavoriteRepository) Add(ctx context.Context, kind domain.FavoriteKind, userID, refID int64) (*domain.Favorite, error) {
	db := r.db.WithContext(ctx)

	var id int64
	switch kind {
	case domain.KindPeople:
		row := domain.FavoritePeople{UserID: userID, PeopleID: refID}
		if err := db.Create(&row).Error; err != nil {
			return nil, translate(err)
		}
		id = row.ID
	case domain.KindPlanet:
		row := domain.FavoritePlanet{UserID: userID, PlanetID: refID}
		if err := db.Create(&row).Error; err != nil {
			return nil, translate(err)
		}
		id = row.ID
	case domain.KindVehicle:
		row := domain.FavoriteVehicle{UserID: userID, VehicleID: refID}
		if err := db.Create(&row).Error; err != nil {
			return nil, translate(err)
		}
		id = row.ID
	default:
		return nil, fmt.Errorf("unknown favorite kind %q", kind)
	}

	return r.GetByID(ctx, kind, id)
}

func (r *FavoriteRepository) GetByID(ctx context.Context, kind domain.FavoriteKind, id int64) (*domain.Favorite, error) {
	favs, err := r.find(ctx, kind, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(favs) == 0 {
		return nil, ErrNotFound
	}
	return &favs[0], nil
}

// Remove deletes the (user, catalog entry) pair. ErrNotFound if it was absent.
func (r *FavoriteRepository) Remove(ctx context.Context, kind domain.FavoriteKind, userID, refID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND "+kind.RefColumn()+" = ?", userID, refID).
		Delete(favoriteModel(kind))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns the user's people, then planet, then vehicle favorites.
// Rows whose user or catalog entry has disappeared are skipped.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	out := make([]domain.Favorite, 0)
	for _, kind := range domain.Kinds {
		favs, err := r.find(ctx, kind, "user_id = ?", userID)
		if err != nil {
			return nil, err
		}
		for _, f := range favs {
			if !f.Loaded() {
				zerolog.Ctx(ctx).Warn().
					Str("kind", string(kind)).
					Int64("favorite_id", f.ID).
					Msg("skipping orphaned favorite")
				continue
			}
			out = append(out, f)
		}
	}
	return out, nil
}

// PruneOrphans deletes favorite rows whose user or catalog entry no longer
// exists and reports how many rows went per kind.
func (r *FavoriteRepository) PruneOrphans(ctx context.Context) (map[domain.FavoriteKind]int64, error) {
	db := r.db.WithContext(ctx)
	removed := make(map[domain.FavoriteKind]int64, len(domain.Kinds))

	for _, kind := range domain.Kinds {
		users := db.Model(&domain.User{}).Select("id")
		refs := db.Model(catalogModel(kind)).Select("id")

		res := db.
			Where("user_id NOT IN (?) OR "+kind.RefColumn()+" NOT IN (?)", users, refs).
			Delete(favoriteModel(kind))
		if res.Error != nil {
			return removed, fmt.Errorf("prune %s favorites: %w", kind, res.Error)
		}
		removed[kind] = res.RowsAffected
	}
	return removed, nil
}

func (r *FavoriteRepository) find(ctx context.Context, kind domain.FavoriteKind, query string, args ...any) ([]domain.Favorite, error) {
	db := r.db.WithContext(ctx).
		Preload("User").
		Preload(relation(kind)).
		Where(query, args...).
		Order("id")

	switch kind {
	case domain.KindPeople:
		var rows []domain.FavoritePeople
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]domain.Favorite, 0, len(rows))
		for _, row := range rows {
			out = append(out, domain.Favorite{
				ID: row.ID, Kind: kind, UserID: row.UserID, RefID: row.PeopleID, CreatedAt: row.CreatedAt,
				User: row.User, People: row.People,
			})
		}
		return out, nil
	case domain.KindPlanet:
		var rows []domain.FavoritePlanet
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]domain.Favorite, 0, len(rows))
		for _, row := range rows {
			out = append(out, domain.Favorite{
				ID: row.ID, Kind: kind, UserID: row.UserID, RefID: row.PlanetID, CreatedAt: row.CreatedAt,
				User: row.User, Planet: row.Planet,
			})
		}
		return out, nil
	case domain.KindVehicle:
		var rows []domain.FavoriteVehicle
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]domain.Favorite, 0, len(rows))
		for _, row := range rows {
			out = append(out, domain.Favorite{
				ID: row.ID, Kind: kind, UserID: row.UserID, RefID: row.VehicleID, CreatedAt: row.CreatedAt,
				User: row.User, Vehicle: row.Vehicle,
			})
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown favorite kind %q", kind)
}
