package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"shopbackend/internal/domain"
	"shopbackend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var userCols = []string{
	"id", "name", "lastname", "email", "password_hash", "role",
	"session_token", "cart", "history", "created_at", "updated_at",
}

func userRow(id int64, email, token string, role int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userCols).
		AddRow(id, "Test", "User", email, "$2a$10$hash", role, token, []byte("[]"), []byte("[]"), now, now)
}

func TestFindByTokenEmptyNeverMatches(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// No query expectation on purpose: an empty token must short-circuit
	// before touching the store, or logged-out rows would match it.
	repo := UserRepository{DB: db}
	if _, err := repo.FindByToken(""); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows for empty token, got %v", err)
	}
}

func TestFindByTokenUnknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE session_token = \\? AND session_token <> ''").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(userCols))

	repo := UserRepository{DB: db}
	if _, err := repo.FindByToken("nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows for unknown token, got %v", err)
	}
}

func TestFindByTokenResolvesUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE session_token = \\?").
		WithArgs("tok-1").
		WillReturnRows(userRow(7, "a@b.com", "tok-1", 1))

	repo := UserRepository{DB: db}
	user, err := repo.FindByToken("tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 || user.Email != "a@b.com" {
		t.Fatalf("wrong user resolved: %#v", user)
	}
	if !user.Role.IsAdmin() {
		t.Fatalf("role 1 should classify as admin")
	}
}

func TestCreateDuplicateEmailIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := UserRepository{DB: db}
	_, err = repo.Create(models.User{Email: "a@b.com", PasswordHash: "h"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestCreateDefaultsCartAndHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := UserRepository{DB: db}
	user, err := repo.Create(models.User{Email: "a@b.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 3 {
		t.Fatalf("insert id not carried: %d", user.ID)
	}
	if string(user.Cart) != "[]" || string(user.History) != "[]" {
		t.Fatalf("cart/history should default to empty arrays")
	}
	if user.SessionToken != "" {
		t.Fatalf("new account must start without a session")
	}
}

func TestUpdateTokenWrites(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE users SET session_token = \\?").
		WithArgs("fresh", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := UserRepository{DB: db}
	if err := repo.UpdateToken(7, "fresh"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
