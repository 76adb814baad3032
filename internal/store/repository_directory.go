package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/models"
)

var directoryColumns = []string{"id", "name", "path", "is_active", "created_at", "updated_at"}

type directoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDirectoryRepository constructs the SQLite-backed directory registry.
func NewDirectoryRepository(db *DB, logger *logger.Logger) DirectoryRepository {
	return &directoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *directoryRepository) Create(ctx context.Context, request models.CreateDirectoryRequest) (models.Directory, error) {
	query, args, err := sq.Insert("directories").
		Columns("name", "path").
		Values(request.Name, request.Path).
		ToSql()
	if err != nil {
		return models.Directory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Directory{}, ErrPathAlreadyRegistered
		}
		r.logger.Err(err).
			Str("func", "directoryRepository.Create").
			Str("path", request.Path).
			Msg("failed to insert directory")
		return models.Directory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Directory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.GetByID(ctx, id)
}

func (r *directoryRepository) GetAll(ctx context.Context) ([]models.Directory, error) {
	query, args, err := sq.Select(directoryColumns...).
		From("directories").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "directoryRepository.GetAll").
			Msg("failed to query directories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var directories []models.Directory
	for rows.Next() {
		var d models.Directory
		if err = scanDirectory(rows, &d); err != nil {
			return nil, err
		}
		directories = append(directories, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return directories, nil
}

func (r *directoryRepository) GetByID(ctx context.Context, id int64) (models.Directory, error) {
	query, args, err := sq.Select(directoryColumns...).
		From("directories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Directory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var d models.Directory
	err = scanDirectory(r.db.QueryRowContext(ctx, query, args...), &d)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Directory{}, ErrDirectoryNotFound
	}
	if err != nil {
		return models.Directory{}, err
	}

	return d, nil
}

func (r *directoryRepository) Update(ctx context.Context, id int64, request models.UpdateDirectoryRequest) (models.Directory, error) {
	builder := sq.Update("directories").Set("updated_at", time.Now())
	if request.Name != nil {
		builder = builder.Set("name", *request.Name)
	}
	if request.Path != nil {
		builder = builder.Set("path", *request.Path)
	}
	if request.IsActive != nil {
		builder = builder.Set("is_active", *request.IsActive)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Directory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Directory{}, ErrPathAlreadyRegistered
		}
		r.logger.Err(err).
			Str("func", "directoryRepository.Update").
			Int64("id", id).
			Msg("failed to update directory")
		return models.Directory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Directory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Directory{}, ErrDirectoryNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *directoryRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("directories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "directoryRepository.Delete").
			Int64("id", id).
			Msg("failed to delete directory")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrDirectoryNotFound
	}

	return nil
}

// SetActive marks one directory active and deactivates all the others in a
// single transaction, so the registry never holds two active directories.
func (r *directoryRepository) SetActive(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "UPDATE directories SET is_active = 0"); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE directories SET is_active = 1, updated_at = ? WHERE id = ?", time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrDirectoryNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDirectory(row rowScanner, d *models.Directory) error {
	err := row.Scan(&d.ID, &d.Name, &d.Path, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite constraint violation.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
