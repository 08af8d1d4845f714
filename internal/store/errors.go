package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registering a login that is taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when the owner has never saved a profile.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrTransient marks failures the driver classified as retryable
	// (connection loss, serialization failure, deadlock).
	ErrTransient = errors.New("transient database error")

	// ErrKeyNotFound is returned by the local key-value table.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrSessionNotFound is returned when no session token is stored locally.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrEncodingColumn is returned when a JSON column value cannot be encoded.
	ErrEncodingColumn = errors.New("error encoding column value")

	// ErrExecutingQuery is returned when a query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when commit fails. The transaction
	// is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a statement cannot be prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when a prepared statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
