package catalog

import "errors"

var (
	ErrNotFound  = errors.New("catalog entry not found")
	ErrNameTaken = errors.New("catalog entry name already used")
)
