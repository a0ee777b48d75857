package store

import "errors"

// Sentinel errors returned by cache implementations to signal well-known
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCacheMiss is returned by [LocalCache.Get] when the key is absent.
	ErrCacheMiss = errors.New("cache key not found")

	// ErrUnknownCacheDriver is returned by [NewClientStorages] for a driver
	// name it cannot construct.
	ErrUnknownCacheDriver = errors.New("unknown cache driver")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan cache rows")
)
