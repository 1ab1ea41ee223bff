package favorite

import (
	"context"
	"errors"
	"fmt"

	"starblog/internal/domain"
	"starblog/internal/repository"
)

type Store interface {
	Add(ctx context.Context, kind domain.FavoriteKind, userID, refID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, kind domain.FavoriteKind, userID, refID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

// Checker reports whether a row with the given id exists.
type Checker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	favorites Store
	users     Checker
	catalogs  map[domain.FavoriteKind]Checker
}

func NewService(favorites Store, users Checker, catalogs map[domain.FavoriteKind]Checker) *Service {
	return &Service{favorites: favorites, users: users, catalogs: catalogs}
}

// Add links the user to the catalog entry. Both must exist; an existing pair
// is reported by the unique index as ErrAlreadyFavorite.
func (s *Service) Add(ctx context.Context, kind domain.FavoriteKind, userID, refID int64) (*domain.Favorite, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	catalog, ok := s.catalogs[kind]
	if !ok {
		return nil, fmt.Errorf("no catalog registered for %q", kind)
	}
	exists, err := catalog.Exists(ctx, refID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRefNotFound
	}

	fav, err := s.favorites.Add(ctx, kind, userID, refID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}
	return fav, nil
}

func (s *Service) Remove(ctx context.Context, kind domain.FavoriteKind, userID, refID int64) error {
	err := s.favorites.Remove(ctx, kind, userID, refID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFavorite
	}
	return err
}

// List returns people, planet and vehicle favorites of the user, in that order.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.favorites.ListByUser(ctx, userID)
}

func (s *Service) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
