package user

import (
	"context"
	"errors"

	"starblog/internal/domain"
	"starblog/internal/repository"
)

// Store is the subset of repository.UserRepository the service needs.
type Store interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	users Store
}

func NewService(users Store) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	u := req.toUser()
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	return u, mapErr(err)
}

func (s *Service) Rename(ctx context.Context, id int64, name string) (*domain.User, error) {
	u, err := s.users.UpdateName(ctx, id, name)
	return u, mapErr(err)
}

// Delete removes the user and their favorites.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return mapErr(s.users.Delete(ctx, id))
}

func mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
