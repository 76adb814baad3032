package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDirectoryNotFound is returned when a query or update targets a
	// directory record that does not exist in the registry.
	ErrDirectoryNotFound = errors.New("directory was not found")

	// ErrPathAlreadyRegistered is returned when registering a directory
	// fails because another record already holds the same filesystem path.
	ErrPathAlreadyRegistered = errors.New("directory path already registered")

	// ErrAccountNotFound is returned when a query or update targets an
	// account record that does not exist in the registry.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrAccountNameTaken is returned when storing an account fails because
	// another record already holds the same name.
	ErrAccountNameTaken = errors.New("account name already taken")

	// ErrNoActiveAccount is returned when no account is marked active in
	// the registry.
	ErrNoActiveAccount = errors.New("no active account")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan registry row")
)
