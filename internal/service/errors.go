package service

import "errors"

var (
	// ErrUnauthenticated is returned by writes attempted without a signed-in
	// identity. It is the only error the data service surfaces.
	ErrUnauthenticated = errors.New("no authenticated user")

	ErrUnknownEntryKind = errors.New("unknown journal entry kind")

	errEmptyPendingWrite = errors.New("pending write has no document")
	errPanicked          = errors.New("recovered from panic")
)
