package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage is returned (wrapped) whenever a write to the underlying
	// storage fails. Reads of unreadable data degrade to empty results.
	ErrStorage = errors.New("storage write failed")

	// ErrUserAlreadyExists is returned when a user with the same wallet
	// address is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrRemoteUnavailable is returned by remote stores when the hosted
	// backend cannot be reached or answers with a server error.
	ErrRemoteUnavailable = errors.New("remote backend unavailable")

	// ErrNoRemote is returned when remote mode is requested but no remote
	// store was configured.
	ErrNoRemote = errors.New("no remote store configured")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)

// ErrNoObjectStore is returned by file operations when no object store was
// configured.
var ErrNoObjectStore = errors.New("no object store configured")
