package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrNotFound     = crerr.New("resource not found")
	// ErrInvalidSetup marks a playoff bracket request that cannot produce a
	// bracket at all; construction fails atomically when it is returned.
	ErrInvalidSetup = crerr.New("invalid playoff setup")
)
