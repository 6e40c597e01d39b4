package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "shopbackend/internal/config"
	"shopbackend/internal/domain"
	"shopbackend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// UserRepository wraps DB access for the users table.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userSelect = `
	SELECT
		id,
		COALESCE(name,''),
		COALESCE(lastname,''),
		email,
		password_hash,
		COALESCE(role,0),
		COALESCE(session_token,''),
		COALESCE(cart,'[]'),
		COALESCE(history,'[]'),
		created_at,
		updated_at
	FROM users
`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var role int
	var cart, history []byte
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Lastname,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.SessionToken,
		&cart,
		&history,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	u.Role = domain.Role(role)
	u.Cart = cart
	u.History = history
	return u, nil
}

// FindByToken resolves a session token by pure equality against the stored
// value. An empty token never matches: logged-out rows hold the empty
// string and must not be resolvable by a missing cookie.
func (r UserRepository) FindByToken(token string) (models.User, error) {
	if token == "" {
		return models.User{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(userSelect+` WHERE session_token = ? AND session_token <> '' LIMIT 1`, token)
	return scanUser(row)
}

func (r UserRepository) FindByEmail(email string) (models.User, error) {
	row := r.db().QueryRow(userSelect+` WHERE email = ? LIMIT 1`, email)
	return scanUser(row)
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	row := r.db().QueryRow(userSelect+` WHERE id = ? LIMIT 1`, id)
	return scanUser(row)
}

// Create inserts a new account. A duplicate email is reported as a
// ConflictError, the store's uniqueness constraint being the only judge.
func (r UserRepository) Create(u models.User) (models.User, error) {
	cart := u.Cart
	if len(cart) == 0 {
		cart = []byte("[]")
	}
	history := u.History
	if len(history) == 0 {
		history = []byte("[]")
	}

	now := time.Now()
	res, err := r.db().Exec(`
		INSERT INTO users (name, lastname, email, password_hash, role, session_token, cart, history, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, '', ?, ?, ?, ?)
	`, u.Name, u.Lastname, u.Email, u.PasswordHash, int(u.Role), []byte(cart), []byte(history), now, now)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return models.User{}, err
	}

	u.ID, _ = res.LastInsertId()
	u.SessionToken = ""
	u.Cart = cart
	u.History = history
	u.CreatedAt = now
	u.UpdatedAt = now
	return u, nil
}

// UpdateToken overwrites the stored session token. Writing a fresh value
// invalidates every previously issued token; writing "" is a logout.
func (r UserRepository) UpdateToken(id int64, token string) error {
	_, err := r.db().Exec(`UPDATE users SET session_token = ?, updated_at = ? WHERE id = ?`, token, time.Now(), id)
	return err
}
