package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolovaya/canteen-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password", "role", "surname", "name", "patronymic", "birthdate", "class_number", "class_letter", "parent_id"})
}

func TestFindByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := userRows().AddRow(1, "kid@school.ru", "secret", string(models.RoleStudent), "Иванов", "Иван", nil, nil, 5, "А", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, role, surname, name, patronymic, birthdate, class_number, class_letter, parent_id FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("kid@school.ru").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "kid@school.ru")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	require.NotNil(t, user.ClassNumber)
	assert.Equal(t, int64(5), *user.ClassNumber)
	assert.Nil(t, user.ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("ghost@school.ru").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@school.ru")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFindByCredentials(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := userRows().AddRow(4, "cook@school.ru", "pass", string(models.RoleCook), nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, role, surname, name, patronymic, birthdate, class_number, class_letter, parent_id FROM users WHERE email = $1 AND password = $2 LIMIT 1")).
		WithArgs("cook@school.ru", "pass").
		WillReturnRows(rows)

	user, err := repo.FindByCredentials(context.Background(), "cook@school.ru", "pass")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCook, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserReturnsID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	user := &models.User{Email: "new@school.ru", Password: "pw", Role: models.RoleParent}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(12), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetParent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET parent_id = $2 WHERE id = $1")).
		WithArgs(int64(3), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetParent(context.Background(), 3, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListChildren(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := userRows().
		AddRow(3, "kid1@school.ru", "pw", string(models.RoleStudent), "Иванов", "Иван", nil, nil, 5, "А", 9).
		AddRow(6, "kid2@school.ru", "pw", string(models.RoleStudent), "Иванова", "Анна", nil, nil, 3, "Б", 9)
	mock.ExpectQuery("SELECT .+ FROM users WHERE parent_id").
		WithArgs(int64(9), string(models.RoleStudent)).
		WillReturnRows(rows)

	kids, err := repo.ListChildren(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, kids, 2)
	assert.Equal(t, "kid2@school.ru", kids[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIDs(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := userRows().
		AddRow(3, "kid@school.ru", "pw", string(models.RoleStudent), nil, nil, nil, nil, nil, nil, nil).
		AddRow(9, "mom@school.ru", "pw", string(models.RoleParent), nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("SELECT .+ FROM users WHERE id IN").
		WillReturnRows(rows)

	users, err := repo.ListByIDs(context.Background(), []int64{3, 9})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIDsEmpty(t *testing.T) {
	db, _, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	users, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, users)
}

func TestDeleteUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
