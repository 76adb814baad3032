package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/models"
)

func newTestAccountRepo(t *testing.T) (AccountRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewAccountRepository(db, logger.Nop()), mock
}

func accountRows(accounts ...models.Account) *sqlmock.Rows {
	rows := sqlmock.NewRows(accountColumns)
	for _, a := range accounts {
		rows.AddRow(a.ID, a.Name, a.Token, a.BaseURL, a.IsActive, a.CreatedAt, a.UpdatedAt)
	}
	return rows
}

func TestAccountRepository_Create(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts (name,token,base_url) VALUES (?,?,?)")).
		WithArgs("work", "sk-token", "https://api.anthropic.com").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id = ?").
		WithArgs(int64(3)).
		WillReturnRows(accountRows(models.Account{
			ID: 3, Name: "work", Token: "sk-token", BaseURL: "https://api.anthropic.com",
			CreatedAt: now, UpdatedAt: now,
		}))

	account, err := repo.Create(context.Background(), models.CreateAccountRequest{
		Name:    "work",
		Token:   "sk-token",
		BaseURL: "https://api.anthropic.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
	assert.Equal(t, "sk-token", account.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_DuplicateName(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})

	_, err := repo.Create(context.Background(), models.CreateAccountRequest{
		Name:    "work",
		Token:   "sk-token",
		BaseURL: "https://api.anthropic.com",
	})
	assert.ErrorIs(t, err, ErrAccountNameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetActive(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, token, base_url, is_active, created_at, updated_at FROM accounts WHERE is_active = ? ORDER BY updated_at DESC LIMIT 1")).
		WithArgs(true).
		WillReturnRows(accountRows(models.Account{
			ID: 5, Name: "work", Token: "sk-token", BaseURL: "https://api.anthropic.com",
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		}))

	account, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), account.ID)
	assert.True(t, account.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetActive_NoneActive(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE is_active = ?").
		WillReturnRows(accountRows())

	_, err := repo.GetActive(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveAccount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Update_RotatesToken(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	token := "sk-rotated"
	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET updated_at = ?, token = ? WHERE id = ?")).
		WithArgs(sqlmock.AnyArg(), "sk-rotated", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnRows(accountRows(models.Account{
			ID: 1, Name: "work", Token: "sk-rotated", BaseURL: "https://api.anthropic.com",
			CreatedAt: now, UpdatedAt: now,
		}))

	account, err := repo.Update(context.Background(), 1, models.UpdateAccountRequest{Token: &token})
	require.NoError(t, err)
	assert.Equal(t, "sk-rotated", account.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec("DELETE FROM accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 404), ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_SetActive(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET is_active = 0")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET is_active = 1, updated_at = ? WHERE id = ?")).
		WithArgs(sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.SetActive(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
