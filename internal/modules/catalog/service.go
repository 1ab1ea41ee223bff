package catalog

import (
	"context"
	"errors"

	"starblog/internal/domain"
	"starblog/internal/repository"
)

// Store is implemented by repository.CatalogRepository.
type Store[T domain.CatalogEntry] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item *T) error
	GetByID(ctx context.Context, id int64) (*T, error)
	UpdateName(ctx context.Context, id int64, name string) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type Service[T domain.CatalogEntry] struct {
	store Store[T]
}

func NewService[T domain.CatalogEntry](store Store[T]) *Service[T] {
	return &Service[T]{store: store}
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	return s.store.List(ctx)
}

func (s *Service[T]) Create(ctx context.Context, item *T) error {
	return mapErr(s.store.Create(ctx, item))
}

func (s *Service[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := s.store.GetByID(ctx, id)
	return item, mapErr(err)
}

func (s *Service[T]) Rename(ctx context.Context, id int64, name string) (*T, error) {
	item, err := s.store.UpdateName(ctx, id, name)
	return item, mapErr(err)
}

// Delete removes the entry and every favorite pointing at it.
func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	return mapErr(s.store.Delete(ctx, id))
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrNameTaken
	}
	return err
}
