package services

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"shopbackend/internal/domain"
	"shopbackend/internal/domain/models"
	"shopbackend/internal/repositories"
	"shopbackend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailNotFound = domain.UnauthenticatedError{Msg: "email not found"}
	ErrWrongPassword = domain.UnauthenticatedError{Msg: "wrong password"}
)

// SessionService owns the single-active-session lifecycle: register, login
// and logout all mutate the one session_token a user holds.
type SessionService struct {
	Users     repositories.UserRepository
	Secret    []byte
	RequestID string
}

type RegisterInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
	Role     domain.Role
}

// Register creates the account with a bcrypt-hashed password, then issues
// the first session token. A duplicate email surfaces as a ConflictError
// from the store, reported to the caller, never fatal.
func (s SessionService) Register(input RegisterInput) (models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	user, err := s.Users.Create(models.User{
		Name:         input.Name,
		Lastname:     input.Lastname,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	})
	if err != nil {
		return models.User{}, "", err
	}

	utils.LogEvent(s.RequestID, "session", "register", "user_id="+strconv.FormatInt(user.ID, 10))
	token, err := s.issueToken(&user)
	return user, token, err
}

// Login verifies credentials and overwrites the stored token with a fresh
// one, implicitly invalidating whatever token was issued before.
func (s SessionService) Login(email, password string) (models.User, string, error) {
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", ErrEmailNotFound
		}
		return models.User{}, "", domain.UpstreamError{Op: "login", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrWrongPassword
	}

	utils.LogEvent(s.RequestID, "session", "login", "user_id="+strconv.FormatInt(user.ID, 10))
	token, err := s.issueToken(&user)
	return user, token, err
}

// Logout clears the stored token so every outstanding copy of it stops
// resolving.
func (s SessionService) Logout(user models.User) error {
	utils.LogEvent(s.RequestID, "session", "logout", "user_id="+strconv.FormatInt(user.ID, 10))
	if err := s.Users.UpdateToken(user.ID, ""); err != nil {
		return domain.UpstreamError{Op: "logout", Err: err}
	}
	return nil
}

// issueToken generates a fresh opaque token, persists it as the user's only
// valid session and returns it for cookie issuance. The token happens to be
// an HS256-signed blob carrying the user id, but nothing ever parses it
// back: validation is equality against the stored value.
func (s SessionService) issueToken(user *models.User) (string, error) {
	// jti keeps back-to-back logins from minting the same blob; each issue
	// must invalidate the previous token even within one second.
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(user.ID, 10),
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", err
	}

	if err := s.Users.UpdateToken(user.ID, token); err != nil {
		return "", domain.UpstreamError{Op: "issue token", Err: err}
	}
	user.SessionToken = token
	return token, nil
}
