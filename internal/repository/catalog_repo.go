package repository

import (
	"context"

	"starblog/internal/domain"

	"gorm.io/gorm"
)

// CatalogRepository stores one catalog kind (people, planets or vehicles).
type CatalogRepository[T domain.CatalogEntry] struct {
	db   *gorm.DB
	kind domain.FavoriteKind
}

func NewPeopleRepository(db *gorm.DB) *CatalogRepository[domain.People] {
	return &CatalogRepository[domain.People]{db: db, kind: domain.KindPeople}
}

func NewPlanetRepository(db *gorm.DB) *CatalogRepository[domain.Planet] {
	return &CatalogRepository[domain.Planet]{db: db, kind: domain.KindPlanet}
}

func NewVehicleRepository(db *gorm.DB) *CatalogRepository[domain.Vehicle] {
	return &CatalogRepository[domain.Vehicle]{db: db, kind: domain.KindVehicle}
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepository[T]) Create(ctx context.Context, item *T) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *CatalogRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *CatalogRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepository[T]) UpdateName(ctx context.Context, id int64, name string) (*T, error) {
	tx := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Update("name", name)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the entry and the favorites that reference it.
func (r *CatalogRepository[T]) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(r.kind.RefColumn()+" = ?", id).Delete(favoriteModel(r.kind)).Error; err != nil {
			return err
		}

		res := tx.Delete(new(T), id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
