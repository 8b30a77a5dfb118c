package store

import "errors"

// Sentinel errors returned by repository and storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrUserNotFound is returned when a user lookup by id or login produces
	// an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrPageNotFound is returned when a page lookup produces an empty
	// result set.
	ErrPageNotFound = errors.New("no page was found")

	// ErrDraftNotFound is returned when no draft is staged for the requested
	// (page, user) pair.
	ErrDraftNotFound = errors.New("draft was not found")

	// ErrInvalidDraftFile is returned when a staged draft cannot be decoded
	// or lacks its identity block.
	ErrInvalidDraftFile = errors.New("invalid draft file")

	// ErrUserCookieNotFound is returned when no shadow value is stored for
	// a user trust cookie.
	ErrUserCookieNotFound = errors.New("user cookie shadow was not found")

	// ErrStagingEntryNotFound is returned by a [StagingArea] when the named
	// entry does not exist.
	ErrStagingEntryNotFound = errors.New("staging entry was not found")

	// ErrInvalidStagingName is returned when an entry name would escape the
	// staging area.
	ErrInvalidStagingName = errors.New("invalid staging entry name")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// and staging methods when an I/O operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrStagingIO is returned when the staging backend (filesystem or
	// Redis) fails to read, write or list entries.
	ErrStagingIO = errors.New("staging area i/o error")
)
