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

func newTestDirectoryRepo(t *testing.T) (DirectoryRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewDirectoryRepository(db, logger.Nop()), mock
}

func directoryRows(directories ...models.Directory) *sqlmock.Rows {
	rows := sqlmock.NewRows(directoryColumns)
	for _, d := range directories {
		rows.AddRow(d.ID, d.Name, d.Path, d.IsActive, d.CreatedAt, d.UpdatedAt)
	}
	return rows
}

func TestDirectoryRepository_Create(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO directories (name,path) VALUES (?,?)")).
		WithArgs("my-project", "/home/dev/my-project").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, path, is_active, created_at, updated_at FROM directories WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(directoryRows(models.Directory{
			ID: 7, Name: "my-project", Path: "/home/dev/my-project", CreatedAt: now, UpdatedAt: now,
		}))

	directory, err := repo.Create(context.Background(), models.CreateDirectoryRequest{
		Name: "my-project",
		Path: "/home/dev/my-project",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), directory.ID)
	assert.Equal(t, "/home/dev/my-project", directory.Path)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_Create_DuplicatePath(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	mock.ExpectExec("INSERT INTO directories").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})

	_, err := repo.Create(context.Background(), models.CreateDirectoryRequest{
		Name: "dup",
		Path: "/home/dev/my-project",
	})
	assert.ErrorIs(t, err, ErrPathAlreadyRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_GetAll(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, path, is_active, created_at, updated_at FROM directories ORDER BY id")).
		WillReturnRows(directoryRows(
			models.Directory{ID: 1, Name: "a", Path: "/tmp/a", IsActive: true, CreatedAt: now, UpdatedAt: now},
			models.Directory{ID: 2, Name: "b", Path: "/tmp/b", CreatedAt: now, UpdatedAt: now},
		))

	directories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, directories, 2)
	assert.True(t, directories[0].IsActive)
	assert.Equal(t, "/tmp/b", directories[1].Path)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	mock.ExpectQuery("SELECT .+ FROM directories WHERE id = ?").
		WithArgs(int64(404)).
		WillReturnRows(directoryRows())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_Update(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	name := "renamed"
	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE directories SET updated_at = ?, name = ? WHERE id = ?")).
		WithArgs(sqlmock.AnyArg(), "renamed", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .+ FROM directories WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnRows(directoryRows(models.Directory{
			ID: 1, Name: "renamed", Path: "/tmp/a", CreatedAt: now, UpdatedAt: now,
		}))

	directory, err := repo.Update(context.Background(), 1, models.UpdateDirectoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", directory.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	name := "renamed"
	mock.ExpectExec("UPDATE directories SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), 404, models.UpdateDirectoryRequest{Name: &name})
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_Delete(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM directories WHERE id = ?")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	mock.ExpectExec("DELETE FROM directories").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 404), ErrDirectoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_SetActive(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE directories SET is_active = 0")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE directories SET is_active = 1, updated_at = ? WHERE id = ?")).
		WithArgs(sqlmock.AnyArg(), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.SetActive(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_SetActive_NotFound(t *testing.T) {
	repo, mock := newTestDirectoryRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE directories SET is_active = 0").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE directories SET is_active = 1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.SetActive(context.Background(), 404), ErrDirectoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
