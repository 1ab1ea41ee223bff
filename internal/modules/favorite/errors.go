package favorite

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRefNotFound     = errors.New("catalog entry not found")
	ErrAlreadyFavorite = errors.New("favorite already exists")
	ErrNotFavorite     = errors.New("favorite not found")
)
