package services

import (
	"errors"
	"testing"
	"time"

	"shopbackend/internal/domain"
	"shopbackend/internal/domain/models"
	"shopbackend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

var userCols = []string{
	"id", "name", "lastname", "email", "password_hash", "role",
	"session_token", "cart", "history", "created_at", "updated_at",
}

func newSessionService(t *testing.T) (SessionService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := SessionService{
		Users:  repositories.UserRepository{DB: db},
		Secret: []byte("test-secret"),
	}
	return svc, mock, func() { db.Close() }
}

func accountRow(t *testing.T, id int64, email, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	now := time.Now()
	return sqlmock.NewRows(userCols).
		AddRow(id, "Test", "User", email, string(hash), 0, "", []byte("[]"), []byte("[]"), now, now)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock, cleanup := newSessionService(t)
	defer cleanup()

	mock.ExpectQuery("WHERE email = \\?").
		WithArgs("none@b.com").
		WillReturnRows(sqlmock.NewRows(userCols))

	_, _, err := svc.Login("none@b.com", "x")
	if !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, cleanup := newSessionService(t)
	defer cleanup()

	mock.ExpectQuery("WHERE email = \\?").
		WithArgs("a@b.com").
		WillReturnRows(accountRow(t, 1, "a@b.com", "right"))

	_, _, err := svc.Login("a@b.com", "wrong")
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestLoginIssuesAndPersistsToken(t *testing.T) {
	svc, mock, cleanup := newSessionService(t)
	defer cleanup()

	mock.ExpectQuery("WHERE email = \\?").
		WithArgs("a@b.com").
		WillReturnRows(accountRow(t, 1, "a@b.com", "right"))
	mock.ExpectExec("UPDATE users SET session_token = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, token, err := svc.Login("a@b.com", "right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("token must not be empty")
	}
	if user.SessionToken != token {
		t.Fatalf("issued token not reflected on the user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("token was not persisted: %v", err)
	}
}

// Two logins must never mint the same token: the second write replaces the
// first, so a colliding blob would quietly keep the old session alive.
func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	svc, mock, cleanup := newSessionService(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery("WHERE email = \\?").
			WithArgs("a@b.com").
			WillReturnRows(accountRow(t, 1, "a@b.com", "right"))
		mock.ExpectExec("UPDATE users SET session_token = \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	_, first, err := svc.Login("a@b.com", "right")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	_, second, err := svc.Login("a@b.com", "right")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if first == second {
		t.Fatalf("back-to-back logins minted the same token")
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	svc, mock, cleanup := newSessionService(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "x"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, mock, cleanup := newSessionService(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("UPDATE users SET session_token = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, token, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 5 || token == "" {
		t.Fatalf("register did not issue a session: id=%d token=%q", user.ID, token)
	}
	if user.PasswordHash == "x" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestLogoutClearsToken(t *testing.T) {
	svc, mock, cleanup := newSessionService(t)
	defer cleanup()

	mock.ExpectExec("UPDATE users SET session_token = \\?").
		WithArgs("", sqlmock.AnyArg(), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Logout(models.User{ID: 9, Email: "a@b.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("token was not cleared: %v", err)
	}
}
