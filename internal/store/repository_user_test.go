package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newPostgresDB(conn, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"user_id", "name", "email", "password_hash", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now().UTC()
	user := models.User{Name: "John", Email: "john@example.com", PasswordHash: "hash", CreatedAt: now}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, user.Name, user.Email, user.PasswordHash, now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Email, created.Email)
	assert.Equal(t, "hash", created.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1)) // intentionally wrong shape

	_, err := repo.CreateUser(context.Background(), models.User{})
	assert.Error(t, err)
}

func TestFindUserByEmail(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
					WithArgs("john@example.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(5, "John", "john@example.com", "hash", now))
			},
			wantID: 5,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM users`).
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM users`).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			user, err := repo.FindUserByEmail(context.Background(), "john@example.com")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.UserID)
			assert.Equal(t, "hash", user.PasswordHash)
		})
	}
}

func TestFindUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE user_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(5, "John", "john@example.com", "hash", time.Now()))

	user, err := repo.FindUserByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "John", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
