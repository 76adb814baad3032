package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/models"
)

var accountColumns = []string{"id", "name", "token", "base_url", "is_active", "created_at", "updated_at"}

type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs the SQLite-backed account registry.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) Create(ctx context.Context, request models.CreateAccountRequest) (models.Account, error) {
	query, args, err := sq.Insert("accounts").
		Columns("name", "token", "base_url").
		Values(request.Name, request.Token, request.BaseURL).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrAccountNameTaken
		}
		r.logger.Err(err).
			Str("func", "accountRepository.Create").
			Str("name", request.Name).
			Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.GetByID(ctx, id)
}

func (r *accountRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	query, args, err := sq.Select(accountColumns...).
		From("accounts").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "accountRepository.GetAll").
			Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err = scanAccount(rows, &a); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return accounts, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (models.Account, error) {
	query, args, err := sq.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var a models.Account
	err = scanAccount(r.db.QueryRowContext(ctx, query, args...), &a)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, err
	}

	return a, nil
}

func (r *accountRepository) GetActive(ctx context.Context) (models.Account, error) {
	query, args, err := sq.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"is_active": true}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var a models.Account
	err = scanAccount(r.db.QueryRowContext(ctx, query, args...), &a)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrNoActiveAccount
	}
	if err != nil {
		return models.Account{}, err
	}

	return a, nil
}

func (r *accountRepository) Update(ctx context.Context, id int64, request models.UpdateAccountRequest) (models.Account, error) {
	builder := sq.Update("accounts").Set("updated_at", time.Now())
	if request.Name != nil {
		builder = builder.Set("name", *request.Name)
	}
	if request.Token != nil {
		builder = builder.Set("token", *request.Token)
	}
	if request.BaseURL != nil {
		builder = builder.Set("base_url", *request.BaseURL)
	}
	if request.IsActive != nil {
		builder = builder.Set("is_active", *request.IsActive)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrAccountNameTaken
		}
		r.logger.Err(err).
			Str("func", "accountRepository.Update").
			Int64("id", id).
			Msg("failed to update account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Account{}, ErrAccountNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("accounts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "accountRepository.Delete").
			Int64("id", id).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// SetActive marks one account active and deactivates all the others in a
// single transaction.
func (r *accountRepository) SetActive(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "UPDATE accounts SET is_active = 0"); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE accounts SET is_active = 1, updated_at = ? WHERE id = ?", time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func scanAccount(row rowScanner, a *models.Account) error {
	err := row.Scan(&a.ID, &a.Name, &a.Token, &a.BaseURL, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}
