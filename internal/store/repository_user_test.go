package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "login", "password_hash", "created_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
		wantID    int64
	}{
		{
			name: "success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("asha", "hash").
					WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "asha", "hash", now))
			},
			wantID: 1,
		},
		{
			name: "duplicate login",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("asha", "hash").
					WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name: "connection lost",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("asha", "hash").
					WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewUserRepository(newDBFromSQL(db), logger.Nop())
			tt.mockSetup(mock)

			created, err := repo.CreateUser(testContext(), models.User{Login: "asha", PasswordHash: "hash"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, created.ID)
			assert.Equal(t, "asha", created.Login)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindUserByLogin(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash, created_at")).
			WithArgs("asha").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "asha", "hash", time.Now()))

		u, err := repo.FindUserByLogin(testContext(), "asha")
		require.NoError(t, err)
		assert.Equal(t, int64(3), u.ID)
		assert.Equal(t, "hash", u.PasswordHash)
	})

	t.Run("unknown login", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery("SELECT").WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUserByLogin(testContext(), "ghost")
		require.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery("SELECT").WithArgs("asha").WillReturnError(errors.New("boom"))

		_, err := repo.FindUserByLogin(testContext(), "asha")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoUserWasFound)
		assert.NotErrorIs(t, err, ErrTransient)
	})
}
