package utils

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestCheckRoomExists(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "game_rooms" WHERE code = \$1 ORDER BY .* LIMIT \$2`).
		WithArgs("ABC123", 1).
		WillReturnRows(sqlmock.NewRows([]string{"code", "status", "max_players", "created_at", "expires_at"}).
			AddRow("ABC123", "lobby", 4, time.Now(), time.Now().Add(time.Hour)))

	room, err := CheckRoomExists(gormDB, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", room.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRoomExistsNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "game_rooms" WHERE code = \$1 ORDER BY .* LIMIT \$2`).
		WithArgs("NOROOM", 1).
		WillReturnRows(sqlmock.NewRows([]string{"code"}))

	_, err := CheckRoomExists(gormDB, "NOROOM")
	assert.EqualError(t, err, "room not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsPlayerInRoom(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "players" WHERE room_code = \$1 AND id = \$2`).
		WithArgs("ABC123", "p-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	in, err := IsPlayerInRoom(gormDB, "ABC123", "p-1")
	require.NoError(t, err)
	assert.True(t, in)
	assert.NoError(t, mock.ExpectationsWereMet())
}
